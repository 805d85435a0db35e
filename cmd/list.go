package cmd

import (
	"fmt"

	"github.com/shouni/go-film-kit/pkg/feature"

	"github.com/spf13/cobra"
)

// listCmd は、利用可能なフィーチャーの一覧をカテゴリごとに表示するのだ。
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "利用可能なフィーチャーの一覧を表示するのだ。",
	Long: `カテゴリごとに、実行できるフィーチャーのIDと説明を一覧表示するのだ。
ここで表示されたIDを generate コマンドの --feature に渡すのだよ。`,
	RunE: listCommand,
}

func listCommand(cmd *cobra.Command, args []string) error {
	registry, err := feature.NewRegistry()
	if err != nil {
		return fmt.Errorf("フィーチャーレジストリの初期化に失敗したのだ: %w", err)
	}

	for _, category := range registry.Categories() {
		fmt.Printf("■ %s\n", category.Name)
		for _, desc := range category.Features {
			fmt.Printf("  %-12s %s: %s\n", desc.ID, desc.Name, desc.Description)
			for _, field := range desc.Fields {
				required := ""
				if field.Required {
					required = " (必須)"
				}
				fmt.Printf("      --input %s=...%s %s\n", field.ID, required, field.Label)
			}
		}
		fmt.Println()
	}
	return nil
}
