package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/immoralia/process-catalog/internal/config"
	"github.com/immoralia/process-catalog/internal/db"
)

var leadsLimit int

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List recently captured leads",
	Long:  `List the most recent onboarding leads and contact requests, newest first.`,
	RunE:  runLeads,
}

func init() {
	leadsCmd.Flags().IntVar(&leadsLimit, "limit", 20, "Maximum rows per listing")
	rootCmd.AddCommand(leadsCmd)
}

func runLeads(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	onboarding, err := database.ListOnboardingLeads(ctx, leadsLimit)
	if err != nil {
		return err
	}
	contacts, err := database.ListContactLeads(ctx, leadsLimit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ONBOARDING LEADS")
	fmt.Fprintln(w, "CREATED\tNOMBRE\tEMAIL\tSECTOR")
	for _, lead := range onboarding {
		sector, _ := lead.Answers["sector"].(string)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			lead.CreatedAt.Format("2006-01-02 15:04"), lead.Nombre, lead.Email, sector)
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "CONTACT REQUESTS")
	fmt.Fprintln(w, "CREATED\tNOMBRE\tEMAIL\tEMPRESA\tPRECIO")
	for _, lead := range contacts {
		price := "personalizado"
		if lead.EstimatedPrice != nil {
			price = fmt.Sprintf("%d€/mes", *lead.EstimatedPrice)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			lead.CreatedAt.Format("2006-01-02 15:04"), lead.Nombre, lead.Email, lead.Empresa, price)
	}

	return w.Flush()
}
