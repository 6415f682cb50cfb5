package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"pet-profiler/internal/domain/scan"

	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var (
		userID string
		petID  string
		name   string
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "scan <image.jpg>",
		Short: "Escanea una foto y muestra el perfil",
		Example: `  pet-profiler scan milo.jpg --user u1 --name Milo
  pet-profiler scan milo.jpg --user u1 --pet 5b1e... --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}

			_, log, s, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown(log, s)

			res, err := s.Scan.Scan(cmd.Context(), scan.Input{
				UserID: userID,
				PetID:  petID,
				Name:   name,
				Image:  img,
				Save:   save,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res.Pet)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "ID de usuario")
	cmd.Flags().StringVar(&petID, "pet", "", "pet_id existente (si falta se genera)")
	cmd.Flags().StringVar(&name, "name", "", "Nombre de la mascota")
	cmd.Flags().BoolVar(&save, "save", false, "Guardar el perfil")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
