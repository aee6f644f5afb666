package app

import (
	"time"

	"depwarden/internal/adapters"
	"depwarden/internal/ports"
)

type Service struct {
	Manifests ports.ManifestPort
	Workspace ports.WorkspacePort
	Overlays  ports.OverlayPort
	Reports   ports.ReportPort
	Hooks     ports.HookInstallerPort
	Clock     func() time.Time
}

func NewService() Service {
	return Service{
		Manifests: adapters.NewManifestFileAdapter(),
		Workspace: adapters.NewWorkspaceAdapter(),
		Overlays:  adapters.NewOverlayFileAdapter(),
		Reports:   adapters.NewReportFileAdapter(),
		Hooks:     adapters.NewHookInstallerAdapter(),
		Clock:     time.Now,
	}
}
