// El binario storesight es la CLI de administración: operaciones de
// backoffice contra la base hosteada sin pasar por el panel.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/storesight/storesight/internal/config"
	"github.com/storesight/storesight/internal/domain/repository"
	"github.com/storesight/storesight/internal/store/pg"
)

var (
	configPath string
	store      *pg.Store
)

func main() {
	root := &cobra.Command{
		Use:           "storesight",
		Short:         "Administración de backoffice del panel",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cfg.Storage.DSN == "" {
				return fmt.Errorf("storage.dsn is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			store, err = pg.Connect(ctx, pg.Config{DSN: cfg.Storage.DSN})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if store != nil {
				store.Close()
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "ruta del archivo de configuración")

	root.AddCommand(orgsCmd(), usersCmd(), featuresCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func orgsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "orgs", Short: "Gestión de organizaciones"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lista todas las organizaciones",
		RunE: func(c *cobra.Command, args []string) error {
			orgs, err := store.Organizations().List(c.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDISPLAYID\tNAME\tCREATED")
			for _, o := range orgs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.DisplayID, o.Name, o.CreatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	})

	create := &cobra.Command{
		Use:   "create <displayid> <name>",
		Short: "Crea una organización",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			org, err := store.Organizations().Create(c.Context(), repository.CreateOrganizationInput{
				DisplayID: args[0],
				Name:      args[1],
			})
			if err != nil {
				return err
			}
			fmt.Println(org.ID)
			return nil
		},
	}
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina una organización (cascada sobre sus recursos)",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return store.Organizations().Delete(c.Context(), args[0])
		},
	})

	return cmd
}

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Gestión de usuarios"}

	var orgID string
	list := &cobra.Command{
		Use:   "list",
		Short: "Lista los usuarios de una organización",
		RunE: func(c *cobra.Command, args []string) error {
			if orgID == "" {
				return fmt.Errorf("--org is required")
			}
			users, err := store.Profiles().ListByOrg(c.Context(), orgID)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.Role)
			}
			return w.Flush()
		},
	}
	list.Flags().StringVar(&orgID, "org", "", "id de la organización")
	cmd.AddCommand(list)

	return cmd
}

func featuresCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "features", Short: "Features por perfil"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <profile-id>",
		Short: "Lista las features de un perfil",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			fs, err := store.Features().ListByProfile(c.Context(), args[0])
			if err != nil {
				return err
			}
			for _, f := range fs {
				fmt.Println(f.Feature)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "assign <profile-id> <feature>",
		Short: "Habilita una feature para un perfil",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			_, err := store.Features().Assign(c.Context(), args[0], args[1])
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unassign <profile-id> <feature>",
		Short: "Deshabilita una feature de un perfil",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return store.Features().Unassign(c.Context(), args[0], args[1])
		},
	})

	return cmd
}
