package cli

import (
	"os"

	"github.com/duynguyendang/plantcurator/pkg/matcher"
	"github.com/duynguyendang/plantcurator/pkg/render"
	"github.com/duynguyendang/plantcurator/pkg/service"
	"github.com/spf13/cobra"
)

var (
	recDifficulty string
	recLight      string
	recSize       string
	recAir        string
	recPet        string
	recGrowth     string
	recColor      string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend plants for six answers",
	Long: "Each answer takes the short code (e.g. 하, 중간, 소, 보통, 주의, 빠름) or the full label.\n" +
		"Run `plantcurator questions` to see the options.",
	Example: "  plantcurator recommend --difficulty 하 --light 중간 --size 소 --air 보통 --pet 주의 --growth 빠름",
	RunE:    runRecommend,
}

func runRecommend(cmd *cobra.Command, args []string) error {
	mgr, rec, err := newRecommender(false)
	if err != nil {
		return err
	}
	defer mgr.Close()

	view, err := rec.Recommend(cmd.Context(), service.Request{
		Answers: matcher.Answers{
			"difficulty":    recDifficulty,
			"light_level":   recLight,
			"size":          recSize,
			"air_purifying": recAir,
			"pet_safe":      recPet,
			"growth_speed":  recGrowth,
		},
		Mode: cfg.Mode,
	})
	if err != nil {
		return err
	}

	color := resolveColor(recColor, cmd.OutOrStdout() == os.Stdout)
	return render.WriteText(cmd.OutOrStdout(), view, render.TextOptions{Color: color})
}

func init() {
	f := recommendCmd.Flags()
	f.StringVar(&recDifficulty, "difficulty", "", "Q1 care difficulty")
	f.StringVar(&recLight, "light", "", "Q2 light level")
	f.StringVar(&recSize, "size", "", "Q3 plant size")
	f.StringVar(&recAir, "air", "", "Q4 air purifying")
	f.StringVar(&recPet, "pet", "", "Q5 pet/child safety")
	f.StringVar(&recGrowth, "growth", "", "Q6 growth speed")
	f.StringVar(&recColor, "color", "auto", "color output: auto, always, never")
}
