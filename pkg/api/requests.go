package api

// OAuthRequest is the HTTP request body for POST /auth/oauth/:provider.
type OAuthRequest struct {
	ProviderAccountID string `json:"provider_account_id"`
	Email             string `json:"email"`
	Name              string `json:"name,omitempty"`
	AvatarURL         string `json:"avatar_url,omitempty"`
}

// SubmitRequest is the HTTP request body for POST /labs/:slug/check.
type SubmitRequest struct {
	SessionID string `json:"session_id"`
}

// BuildRequest is the HTTP request body for POST /sessions/:id/build.
type BuildRequest struct {
	ContextPath    string `json:"context_path"`
	DockerfilePath string `json:"dockerfile_path"`
}

// FSWriteRequest is the HTTP request body for POST /fs/write.
type FSWriteRequest struct {
	SessionID  string `json:"session_id"`
	Path       string `json:"path"`
	ContentB64 string `json:"content_b64"`
	Encoding   string `json:"encoding,omitempty"`
}

// FSCreateRequest is the HTTP request body for POST /fs/create.
type FSCreateRequest struct {
	SessionID  string `json:"session_id"`
	Path       string `json:"path"`
	Kind       string `json:"kind"`
	ContentB64 string `json:"content_b64,omitempty"`
}

// FSRenameRequest is the HTTP request body for POST /fs/rename.
type FSRenameRequest struct {
	SessionID string `json:"session_id"`
	Path      string `json:"path"`
	NewPath   string `json:"new_path"`
}

// FSDeleteRequest is the HTTP request body for POST /fs/delete.
type FSDeleteRequest struct {
	SessionID string `json:"session_id"`
	Path      string `json:"path"`
}

// AgentRequest is the HTTP request body for the agent endpoints.
type AgentRequest struct {
	SessionID string `json:"session_id"`
	Prompt    string `json:"prompt"`
	LabSlug   string `json:"lab_slug,omitempty"`
}

// AgentApplyRequest is the HTTP request body for POST /agent/patch/apply.
type AgentApplyRequest struct {
	SessionID string           `json:"session_id"`
	Files     []AgentPatchFile `json:"files"`
}

// AgentPatchFile is one file in an agent patch.
type AgentPatchFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}
