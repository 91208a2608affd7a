package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"labeling/internal/adapters/out/pdf"
	"labeling/internal/adapters/out/postgres"
	"labeling/internal/core/application/staging"
	"labeling/internal/core/application/usecases/commands"
	"labeling/internal/core/application/usecases/queries"
	"labeling/internal/core/domain/services"
	"labeling/internal/jobs"
)

// CompositionRoot wires the application graph: shared infrastructure is built
// once, handlers are built per request for cheap, stateless composition.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	arena      *staging.Arena
	renderer   *pdf.Renderer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		arena:      staging.NewArena(),
		renderer:   pdf.NewRenderer(services.NewClassificationResolver(), config.RenderWorkers),
	}
}

func (c *CompositionRoot) CreateGenerateVolumesCommandHandler() commands.GenerateVolumesCommandHandler {
	return commands.NewGenerateVolumesCommandHandler(
		services.NewVolumeDecomposer(),
		services.NewClassificationResolver(),
		c.arena,
	)
}

func (c *CompositionRoot) CreateCommitVolumesCommandHandler() commands.CommitVolumesCommandHandler {
	return commands.NewCommitVolumesCommandHandler(c.labelUoWFactory(), c.arena)
}

func (c *CompositionRoot) CreatePrintLabelsCommandHandler() commands.PrintLabelsCommandHandler {
	return commands.NewPrintLabelsCommandHandler(c.labelUoWFactory(), c.arena, c.renderer)
}

func (c *CompositionRoot) CreateReprintLabelCommandHandler() commands.ReprintLabelCommandHandler {
	return commands.NewReprintLabelCommandHandler(c.CreatePrintLabelsCommandHandler())
}

func (c *CompositionRoot) CreateInvalidateLabelCommandHandler() commands.InvalidateLabelCommandHandler {
	return commands.NewInvalidateLabelCommandHandler(c.labelUoWFactory(), c.arena)
}

func (c *CompositionRoot) CreateDeleteLabelCommandHandler() commands.DeleteLabelCommandHandler {
	return commands.NewDeleteLabelCommandHandler(c.labelUoWFactory(), c.arena)
}

func (c *CompositionRoot) CreateClassifyVolumeCommandHandler() commands.ClassifyVolumeCommandHandler {
	return commands.NewClassifyVolumeCommandHandler(c.labelUoWFactory(), c.arena, services.NewHazardCatalog())
}

func (c *CompositionRoot) CreateCreateMasterLabelCommandHandler() commands.CreateMasterLabelCommandHandler {
	return commands.NewCreateMasterLabelCommandHandler(c.masterLabelUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMasterLabelCommandHandler() commands.DeleteMasterLabelCommandHandler {
	return commands.NewDeleteMasterLabelCommandHandler(c.masterLabelUoWFactory())
}

func (c *CompositionRoot) CreateInvalidateMasterLabelCommandHandler() commands.InvalidateMasterLabelCommandHandler {
	return commands.NewInvalidateMasterLabelCommandHandler(c.masterLabelUoWFactory())
}

func (c *CompositionRoot) CreateLinkVolumesCommandHandler() commands.LinkVolumesCommandHandler {
	return commands.NewLinkVolumesCommandHandler(c.crossUoWFactory(), services.NewMasterLabelLinker())
}

func (c *CompositionRoot) CreateUnlinkVolumesCommandHandler() commands.UnlinkVolumesCommandHandler {
	return commands.NewUnlinkVolumesCommandHandler(c.crossUoWFactory(), services.NewMasterLabelLinker())
}

func (c *CompositionRoot) CreatePrintMasterLabelCommandHandler() commands.PrintMasterLabelCommandHandler {
	return commands.NewPrintMasterLabelCommandHandler(c.crossUoWFactory(), c.renderer)
}

func (c *CompositionRoot) CreateGetLabelsByInvoiceQueryHandler() queries.GetLabelsByInvoiceQueryHandler {
	return queries.NewGetLabelsByInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLabelByCodeQueryHandler() queries.GetLabelByCodeQueryHandler {
	return queries.NewGetLabelByCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMasterLabelsQueryHandler() queries.GetMasterLabelsQueryHandler {
	return queries.NewGetMasterLabelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.arena, c.config.StagingTTLDuration(), logger)
}

func (c *CompositionRoot) labelUoWFactory() commands.LabelUoWFactory {
	return FuncLabelUoWFactory(func() commands.LabelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) masterLabelUoWFactory() commands.MasterLabelUoWFactory {
	return FuncMasterLabelUoWFactory(func() commands.MasterLabelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncLabelUoWFactory func() commands.LabelUoW

func (f FuncLabelUoWFactory) Create() commands.LabelUoW {
	return f()
}

type FuncMasterLabelUoWFactory func() commands.MasterLabelUoW

func (f FuncMasterLabelUoWFactory) Create() commands.MasterLabelUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
