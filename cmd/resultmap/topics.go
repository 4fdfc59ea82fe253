package resultmap

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/resultmap/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// initTopics installs the topic-aware help command. Topics are embedded,
// so a failure here means a broken build and help falls back to cobra's.
func initTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return
	}
	_, _ = topics.Initialize(rootCmd, sub, topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
}
