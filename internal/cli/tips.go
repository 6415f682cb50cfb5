package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTipsCmd() *cobra.Command {
	var (
		userID  string
		petID   string
		refresh bool
	)

	cmd := &cobra.Command{
		Use:     "tips",
		Short:   "Muestra las recomendaciones de una mascota",
		Example: `  pet-profiler tips --user u1 --pet 5b1e... --refresh`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, s, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown(log, s)

			res, err := s.Tips.Get(cmd.Context(), userID, petID, refresh)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			src := "backend"
			if res.Cached {
				src = "cache"
			}
			fmt.Fprintf(out, "fetched %s (%s)\n", res.FetchedAt.Format("2006-01-02 15:04"), src)
			for _, t := range res.Tips {
				fmt.Fprintf(out, "\n%s [%.0f]\n", t.Title, t.Importance)
				for _, p := range t.Points {
					fmt.Fprintf(out, "  %d. %s\n", p.Index, p.Text)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "ID de usuario")
	cmd.Flags().StringVar(&petID, "pet", "", "pet_id del backend")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Ignorar el cache")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pet")

	return cmd
}
