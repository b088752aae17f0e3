package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/aristath/greenmix/internal/domain"
	"github.com/aristath/greenmix/internal/modules/allocation"
	"github.com/aristath/greenmix/internal/modules/loadprofiles"
	"github.com/aristath/greenmix/internal/modules/recommendation"
	"github.com/aristath/greenmix/internal/modules/sizing"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd(log zerolog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "greenmix",
		Short:        "Size and split a renewable-energy investment",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(recommendCmd(log))
	rootCmd.AddCommand(optimalCmd())
	rootCmd.AddCommand(loadProfileCmd())

	return rootCmd
}

func recommendCmd(log zerolog.Logger) *cobra.Command {
	var (
		budget      float64
		objectives  []string
		risk        string
		consumption float64
		pod         string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a solar/battery/wind split for a budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := buildProfile(budget, objectives, risk, consumption, cmd.Flags().Changed("consumption"))
			if err != nil {
				return err
			}

			svc, err := recommendation.NewService(allocation.NewAllocator(allocation.DefaultRules()), 0, nil, log)
			if err != nil {
				return err
			}
			rec, err := svc.Recommend(cmd.Context(), recommendation.Request{Profile: profile, PodNumber: pod})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rec)
			}
			return printRecommendation(cmd.OutOrStdout(), rec)
		},
	}

	cmd.Flags().Float64VarP(&budget, "budget", "b", 0, "Total investment in EUR (required)")
	cmd.Flags().StringArrayVarP(&objectives, "objective", "o", nil, "Objective: maximize-return, energy-autonomy or sustainability (repeatable)")
	cmd.Flags().StringVarP(&risk, "risk", "r", string(domain.RiskModerate), "Risk appetite: conservative, moderate or aggressive")
	cmd.Flags().Float64Var(&consumption, "consumption", 0, "Annual consumption in kWh")
	cmd.Flags().StringVar(&pod, "pod", "", "Point of delivery number")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func buildProfile(budget float64, objectives []string, risk string, consumption float64, hasConsumption bool) (domain.UserProfile, error) {
	appetite, err := domain.ParseRiskAppetite(risk)
	if err != nil {
		return domain.UserProfile{}, err
	}

	profile := domain.UserProfile{
		Budget:       budget,
		RiskAppetite: appetite,
	}
	for _, raw := range objectives {
		o, err := domain.ParseObjective(raw)
		if err != nil {
			return domain.UserProfile{}, err
		}
		profile.Objectives = append(profile.Objectives, o)
	}
	if hasConsumption {
		profile.AnnualConsumption = &consumption
	}

	return profile, profile.Validate()
}

func printRecommendation(out io.Writer, rec *recommendation.Recommendation) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if rec.Optimal != nil {
		fmt.Fprintf(tw, "Optimal investment:\t%.0f EUR (range %.0f - %.0f, %.1f kWc)\n",
			rec.Optimal.Optimal, rec.Optimal.Min, rec.Optimal.Max, rec.Optimal.CapacityKWc)
	}

	fmt.Fprintln(tw, "Asset\tShare\tInvestment\tCapacity")
	a := rec.Allocation
	for _, row := range []struct {
		name  string
		asset domain.AssetAllocation
	}{
		{"Solar", a.Solar},
		{"Battery", a.Battery},
		{"Wind", a.Wind},
	} {
		fmt.Fprintf(tw, "%s\t%d%%\t%.2f EUR\t%s\n", row.name, row.asset.Percentage, row.asset.Investment, row.asset.Capacity)
	}
	if !rec.WithinBounds {
		fmt.Fprintln(tw, "Warning:\tsplit is outside the recommended per-asset bounds")
	}

	fmt.Fprintf(tw, "\nReturn:\t%.1f %%/yr\n", rec.Metrics.Return)
	fmt.Fprintf(tw, "Autonomy:\t%d %%\n", rec.Metrics.Autonomy)
	fmt.Fprintf(tw, "CO2 avoided:\t%.1f t/yr\n", rec.Metrics.CO2)

	fmt.Fprintln(tw, "\nScenario\tSolar\tBattery\tWind\tReturn\tAutonomy\tCO2")
	for _, sc := range rec.Scenarios {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.1f\t%d\t%.1f\n",
			sc.Name, sc.Solar, sc.Battery, sc.Wind, sc.Return, sc.Autonomy, sc.CO2)
	}

	if rec.Summary != nil {
		fmt.Fprintf(tw, "\nLoad profile:\t%s (peak %d:00, %.1f kW)\n",
			rec.Summary.Label, rec.Summary.PeakHour, rec.Summary.PeakConsumptionKW)
	}

	return tw.Flush()
}

func optimalCmd() *cobra.Command {
	var (
		consumption float64
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "optimal",
		Short: "Compute the optimal investment for an annual consumption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if math.IsNaN(consumption) || math.IsInf(consumption, 0) {
				return domain.NewValidationError("consumption", "annual consumption must be a finite number")
			}
			rec := sizing.RecommendedRange(consumption)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rec)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Annual consumption:\t%.0f kWh\n", rec.AnnualConsumption)
			fmt.Fprintf(tw, "Optimal:\t%.0f EUR\n", rec.Optimal)
			fmt.Fprintf(tw, "Range:\t%.0f - %.0f EUR\n", rec.Min, rec.Max)
			fmt.Fprintf(tw, "Capacity:\t%.1f kWc\n", rec.CapacityKWc)
			return tw.Flush()
		},
	}

	cmd.Flags().Float64VarP(&consumption, "consumption", "c", 0, "Annual consumption in kWh (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	_ = cmd.MarkFlagRequired("consumption")

	return cmd
}

func loadProfileCmd() *cobra.Command {
	var (
		pod    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "load-profile",
		Short: "Show the 24-hour load profile selected for a POD number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			points := loadprofiles.GetLoadProfileByPod(pod)
			summary := loadprofiles.SummarizePod(pod)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
					"profile_type": summary.ProfileType,
					"points":       points,
					"summary":      summary,
				})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintf(cmd.OutOrStdout(), "Profile: %s\n", summary.Label)
			fmt.Fprintln(tw, "Hour\tSolar\tWind\tBattery\tConsumption\t")
			for _, p := range points {
				fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%.1f\t%.1f\t\n", p.Hour, p.Solar, p.Wind, p.Battery, p.Consumption)
			}
			fmt.Fprintf(tw, "Total\t%.1f\t%.1f\t%.1f\t%.1f\t\n", summary.SolarKWh, summary.WindKWh, summary.BatteryKWh, summary.ConsumptionKWh)
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&pod, "pod", "", "Point of delivery number")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")

	return cmd
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
