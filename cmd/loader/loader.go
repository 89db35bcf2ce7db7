package loader

import (
	"github.com/spf13/cobra"

	"github.com/placentalab/geocatalog/internal/config"
	coreLoader "github.com/placentalab/geocatalog/pkg/core/loader"
	impl "github.com/placentalab/geocatalog/pkg/core/loader/loader"
	"github.com/placentalab/geocatalog/pkg/middleware/db"
	"github.com/placentalab/geocatalog/pkg/middleware/logger"
	"github.com/placentalab/geocatalog/pkg/repo/migrate"
)

var (
	source string
	sheet  string
)

// New builds the offline load command. It runs out-of-band: parse the
// export, validate, then atomically replace the stored dataset.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "load",
		Long:         "Load the GEO metadata export into the record store (full replace)",
		SilenceUsage: true,
		PreRunE:      initLoad,
		RunE:         runLoad,
		PostRunE: func(cmd *cobra.Command, _ []string) error {
			db.ClosePostgres(cmd.Context())
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "export path or URL (defaults to LOADER_SOURCE)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name (defaults to LOADER_SHEET)")
	return cmd
}

func initLoad(cmd *cobra.Command, _ []string) error {
	conf := config.Global()
	db.InitPostgres(cmd.Context(), &db.Config{
		Host: conf.Database.Host, Port: conf.Database.Port,
		User: conf.Database.User, PW: conf.Database.Password,
		DBName: conf.Database.Name, LogConf: db.LogConf{Level: conf.Log.LogLevel},
	})
	return migrate.Table(cmd.Context())
}

func runLoad(cmd *cobra.Command, _ []string) error {
	conf := config.Global()
	req := &coreLoader.LoadReq{
		Source:  conf.Loader.Source,
		Sheet:   conf.Loader.Sheet,
		Workers: conf.Loader.Workers,
	}
	if source != "" {
		req.Source = source
	}
	if sheet != "" {
		req.Sheet = sheet
	}

	resp, err := impl.New().Load(cmd.Context(), req)
	if err != nil {
		logger.Errorf(cmd.Context(), "load err: %+v", err)
		return err
	}
	logger.Infof(cmd.Context(), "load complete: %d studies", resp.Loaded)
	return nil
}
