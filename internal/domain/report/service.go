package report

import "context"

type ReportService interface {
	Overview(ctx context.Context, r Range) (Overview, error)
	Generate(ctx context.Context, t Type, r Range) (Report, error)
	Download(ctx context.Context, t Type, r Range) (File, error)
	Progression(ctx context.Context, r Range) (Progression, error)
	AdminStats(ctx context.Context) (AdminStats, error)
	Export(ctx context.Context) (DataExport, error)
	ExportFile(ctx context.Context, format string) (File, error)
}
