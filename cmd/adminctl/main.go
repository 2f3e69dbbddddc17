package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/barbersmart-admin/internal/cache"
	"github.com/BruksfildServices01/barbersmart-admin/internal/config"
	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/payment"
	infraRepo "github.com/BruksfildServices01/barbersmart-admin/internal/infra/repository"
	"github.com/BruksfildServices01/barbersmart-admin/internal/logger"
	"github.com/BruksfildServices01/barbersmart-admin/internal/metrics"
	"github.com/BruksfildServices01/barbersmart-admin/internal/timezone"
	"github.com/BruksfildServices01/barbersmart-admin/internal/upstream"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "adminctl",
		Short:        "BarberSmart admin console tools",
		SilenceUsage: true,
	}

	root.AddCommand(statusCmd())
	root.AddCommand(invoiceCmd())
	root.AddCommand(refreshCmd())

	return root
}

func statusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Derive the display status of an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			clock, _ := cmd.Flags().GetString("time")
			stored, _ := cmd.Flags().GetString("stored")

			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}

			ds := appointment.DeriveStatus(date, clock, stored, now)
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"status": ds.Status,
				"reason": ds.Reason,
				"color":  ds.Color(),
			})
		},
	}

	cmd.Flags().String("date", "", "appointment date, YYYY-MM-DD")
	cmd.Flags().String("time", "", "appointment time, HH:MM[:SS]")
	cmd.Flags().String("stored", "", "stored status")
	cmd.Flags().String("now", "", "RFC 3339 instant to evaluate at (default: current time)")

	return cmd
}

func invoiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Reconcile an invoice from a payment record JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			if file == "" {
				return errors.New("--file is required")
			}

			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			var rec *payment.Record
			if err := json.NewDecoder(in).Decode(&rec); err != nil {
				return fmt.Errorf("decode payment record: %w", err)
			}

			cfg := config.Load()
			r := invoice.NewReconciler(invoice.Party{
				Name:    cfg.IssuerName,
				Address: cfg.IssuerAddress,
				Phone:   cfg.IssuerPhone,
				Email:   cfg.IssuerEmail,
			}, timezone.Location(cfg.IssuerTimezone))

			return writeJSON(cmd.OutOrStdout(), r.Reconcile(rec, now))
		},
	}

	cmd.Flags().String("file", "", "payment record JSON file, or - for stdin")
	cmd.Flags().String("now", "", "RFC 3339 issue instant (default: current time)")

	return cmd
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch upstream snapshots once and store them in Redis",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if !cfg.CacheEnabled() {
				return errors.New("REDIS_URL is not set")
			}
			log := logger.New(cfg.LogLevel, true)

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*cfg.UpstreamTimeout)
			defer cancel()

			rdb, err := cache.Open(ctx, cfg.RedisURL)
			if err != nil {
				return err
			}
			defer rdb.Close()

			repo := infraRepo.NewSnapshotRepository(
				upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamToken, cfg.UpstreamTimeout),
				cache.NewSnapshotCache(rdb, cfg.SnapshotTTL),
				log,
				metrics.NewNop(),
			)
			if err := repo.Refresh(ctx); err != nil {
				return err
			}

			log.Info().Msg("snapshots refreshed")
			return nil
		},
	}
}

func nowFlag(cmd *cobra.Command) (time.Time, error) {
	raw, _ := cmd.Flags().GetString("now")
	if raw == "" {
		return timezone.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now: %w", err)
	}
	return t, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
