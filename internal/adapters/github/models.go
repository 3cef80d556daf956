package github

// Dispatch names one workflow_dispatch call
type Dispatch struct {
	Owner    string
	Repo     string
	Workflow string
	Ref      string
	Inputs   map[string]string
}

// dispatchBody is the documented POST body for the dispatches endpoint
type dispatchBody struct {
	Ref    string            `json:"ref"`
	Inputs map[string]string `json:"inputs,omitempty"`
}
