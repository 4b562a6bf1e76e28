package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Rakhulsr/go-warehouse/app/configs"
	"github.com/Rakhulsr/go-warehouse/app/db/seeders"
	"github.com/Rakhulsr/go-warehouse/app/models/migrations"
	"github.com/Rakhulsr/go-warehouse/app/services"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Opener returns the database the commands run against.
type Opener func() (*gorm.DB, error)

// NewCli builds the command tree. driverName is passed to sqlx for the raw
// audit query.
func NewCli(open Opener, driverName string, out io.Writer, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "warehouse",
		Usage:     "warehouse catalog administration",
		Writer:    out,
		ErrWriter: out,
		// Exit codes are handled by RunCli so the tree can run inside tests.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := open()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					logger.Info("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Fill an empty database with demo catalog data",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "seed",
						Usage: "random seed for generated products",
						Value: 1,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := open()
					if err != nil {
						return err
					}
					svc, err := services.NewServices(db, driverName, logger)
					if err != nil {
						return err
					}
					sum, err := seeders.DBSeed(ctx, svc, c.Int("seed"), logger)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.Root().Writer, "seeded %d categories, %d subcategories, %d products, %d variants\n",
						sum.Categories, sum.Subcategories, sum.Products, sum.Variants)
					return nil
				},
			},
			{
				Name:  "audit-sizes",
				Usage: "List size types that reference both or neither size table",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "fail",
						Usage: "exit with an error when any size type is flagged",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := open()
					if err != nil {
						return err
					}
					svc, err := services.NewServices(db, driverName, logger)
					if err != nil {
						return err
					}
					rows, err := svc.Sizes.AuditSizeTypes(ctx)
					if err != nil {
						return err
					}

					w := c.Root().Writer
					if len(rows) == 0 {
						fmt.Fprintln(w, "all size types reference exactly one size")
						return nil
					}
					for _, row := range rows {
						problem := "neither"
						if row.BothSet() {
							problem = "both"
						}
						fmt.Fprintf(w, "size_type=%d category=%d references=%s\n", row.ID, row.CategoryID, problem)
					}
					if c.Bool("fail") {
						return cli.Exit(fmt.Sprintf("%d size types flagged", len(rows)), 1)
					}
					return nil
				},
			},
		},
	}
}

func RunCli(env configs.ENV, logger *zap.Logger) {
	open := func() (*gorm.DB, error) {
		return configs.OpenConnection(env, logger)
	}
	if err := NewCli(open, "mysql", os.Stdout, logger).Run(context.Background(), os.Args); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
