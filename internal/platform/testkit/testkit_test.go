package testkit

import "testing"

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("boom")
	})
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()

	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	MustContain(t, "dispatch accepted for patcher.yml", "patcher.yml")
}

func TestMustNotContain(t *testing.T) {
	t.Parallel()

	MustNotContain(t, "authorization redacted", "ghp_secret")
	// empty needle is treated as absent
	MustNotContain(t, "anything", "")
}
