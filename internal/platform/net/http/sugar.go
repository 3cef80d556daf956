package http

// Preflight answers OPTIONS on path with an empty 200
func Preflight(r Router, path string) {
	r.Options(path, RespondEmpty)
}
