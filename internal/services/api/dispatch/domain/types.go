// Package domain holds the dispatch request, outcomes and ports
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// APILevel is the Android API level as sent to the workflow
// callers may send a JSON string or a whole JSON number, numbers are sent as plain decimal text
type APILevel string

// UnmarshalJSON accepts "35", 35 and null
func (a *APILevel) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*a = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = APILevel(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("android_api_level must be a string or number")
	}
	lvl, err := wholeNumber(n)
	if err != nil {
		return err
	}
	*a = APILevel(strconv.FormatInt(lvl, 10))
	return nil
}

// wholeNumber accepts 35, 35.0 and 3.5e1 alike and rejects fractions
func wholeNumber(n json.Number) (int64, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, fmt.Errorf("android_api_level must be a whole number")
	}
	return int64(f), nil
}

// PatchRequest is the caller supplied form, json names are the workflow input names
type PatchRequest struct {
	FrameworkJarURL    string   `json:"framework_jar_url" validate:"notblank"`
	ServicesJarURL     string   `json:"services_jar_url" validate:"notblank"`
	MiuiServicesJarURL string   `json:"miui_services_jar_url" validate:"notblank"`
	AndroidAPILevel    APILevel `json:"android_api_level" validate:"notblank"`
	CustomDeviceName   string   `json:"custom_device_name" validate:"notblank"`
	CustomVersion      string   `json:"custom_version" validate:"notblank"`
	UserID             string   `json:"user_id,omitempty"`
}

// Inputs maps the request onto the workflow inputs
// values are forwarded as received; user_id is left out when blank
func (p PatchRequest) Inputs() map[string]string {
	in := map[string]string{
		"framework_jar_url":     p.FrameworkJarURL,
		"services_jar_url":      p.ServicesJarURL,
		"miui_services_jar_url": p.MiuiServicesJarURL,
		"android_api_level":     string(p.AndroidAPILevel),
		"custom_device_name":    p.CustomDeviceName,
		"custom_version":        p.CustomVersion,
	}
	if strings.TrimSpace(p.UserID) != "" {
		in["user_id"] = p.UserID
	}
	return in
}

// Accepted is returned when the remote accepted the dispatch
// DispatchID correlates logs and responses only, it is not sent upstream
type Accepted struct {
	DispatchID uuid.UUID `json:"dispatch_id"`
	Target     string    `json:"target"`
	Workflow   string    `json:"workflow"`
	Ref        string    `json:"ref"`
}

// Target binds a caller visible name to a workflow file
type Target struct {
	Name     string `json:"name"`
	Workflow string `json:"workflow"`
}

// Targets lists the dispatch targets with the default name
type Targets struct {
	Default string   `json:"default"`
	Names   []string `json:"names"`
}

// MissingFieldsError lists required fields that were absent or blank, in declaration order
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}
