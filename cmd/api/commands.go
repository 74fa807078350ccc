package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-ledger/pkg/jwt"
)

func (c *cli) migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea o actualiza el esquema del almacén y termina",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := openLedger(cmd.Context(), c.cfg, c.log, true)
			if err != nil {
				c.log.Error().Err(err).Msg("migrar esquema")
				return err
			}
			l.Close()
			return nil
		},
	}
}

func (c *cli) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Carga los datos de ejemplo si no hay productos",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := openLedger(cmd.Context(), c.cfg, c.log, true)
			if err != nil {
				c.log.Error().Err(err).Msg("abrir almacén")
				return err
			}
			defer l.Close()
			return c.runSeed(cmd.Context(), l)
		},
	}
}

func (c *cli) tokenCmd() *cobra.Command {
	var (
		subject string
		minutes int
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Imprime un token JWT con permiso de escritura",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if minutes <= 0 {
				minutes = c.cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(c.cfg.JWT.Secret, subject, c.cfg.JWT.Issuer, minutes)
			if err != nil {
				return fmt.Errorf("generar token (¿JWT_SECRET definido?): %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "ops", "sujeto del token")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "minutos de validez (por defecto JWT_EXPIRATION_MINUTES)")
	return cmd
}
