package app

import (
	"github.com/vk/infographgo/internal/registry"
	"github.com/vk/infographgo/modules/nlm"
	"github.com/vk/infographgo/modules/paper2any"
)

// defaultTools is the definitive list of external tools compiled into the
// infographgo binary, assembled per run configuration.
func defaultTools(cfg *Config) []registry.Tool {
	tools := []registry.Tool{nlm.New()}
	if cfg.WithPaper2Any {
		tools = append(tools, paper2any.New(cfg.Paper2AnyDir))
	}
	return tools
}
