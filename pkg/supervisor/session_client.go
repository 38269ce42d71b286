package supervisor

import "context"

// SessionClient is a Client pre-bound to one session. It exposes the same
// operations minus the ability to name a different session, so code holding
// it (notably lab graders) works through exactly the same path as normal
// user actions but cannot reach other workers.
type SessionClient struct {
	c         *Client
	sessionID string
}

// SessionID returns the bound session id.
func (s *SessionClient) SessionID() string { return s.sessionID }

// Build builds an image inside the bound worker.
func (s *SessionClient) Build(ctx context.Context, contextPath, dockerfilePath, imageTag string) (*BuildResult, error) {
	return s.c.Build(ctx, BuildRequest{
		SessionID:      s.sessionID,
		ContextPath:    contextPath,
		DockerfilePath: dockerfilePath,
		ImageTag:       imageTag,
	})
}

// Run starts a container from a built image.
func (s *SessionClient) Run(ctx context.Context, image string, ports []PortBinding, detached, autoRemove bool) (*RunResult, error) {
	return s.c.Run(ctx, RunRequest{
		SessionID:  s.sessionID,
		Image:      image,
		Ports:      ports,
		Detached:   detached,
		AutoRemove: autoRemove,
	})
}

// StopRun stops and optionally removes a run container.
func (s *SessionClient) StopRun(ctx context.Context, containerRef string, timeoutSeconds int, remove bool) error {
	return s.c.StopRun(ctx, StopRunRequest{
		SessionID:      s.sessionID,
		ContainerRef:   containerRef,
		TimeoutSeconds: timeoutSeconds,
		Remove:         remove,
	})
}

// Exec runs argv inside the bound worker.
func (s *SessionClient) Exec(ctx context.Context, argv []string, workdir string, timeoutSeconds int) (*ExecResult, error) {
	return s.c.Exec(ctx, ExecRequest{
		SessionID:      s.sessionID,
		Argv:           argv,
		Workdir:        workdir,
		TimeoutSeconds: timeoutSeconds,
	})
}

// ContainerLogs fetches logs from a run container.
func (s *SessionClient) ContainerLogs(ctx context.Context, containerRef string) (string, error) {
	return s.c.ContainerLogs(ctx, s.sessionID, containerRef)
}

// FSList lists a workspace path.
func (s *SessionClient) FSList(ctx context.Context, path string) (*ListResult, error) {
	return s.c.FSList(ctx, s.sessionID, path)
}

// FSRead reads a workspace file.
func (s *SessionClient) FSRead(ctx context.Context, path string) (*ReadResult, error) {
	return s.c.FSRead(ctx, s.sessionID, path)
}
