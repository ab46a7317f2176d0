package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/dannyphamv/labelpress/internal/core/config"
	"github.com/dannyphamv/labelpress/pkg/executil"
)

// ConfigCheck validates the configuration file and data directory.
type ConfigCheck struct {
	config     *config.Config
	configPath string
}

// NewConfigCheck creates a new configuration check.
func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{config: cfg, configPath: configPath}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if c.config == nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config loaded",
			Status: StatusFail,
			Detail: "configuration not loaded",
		})
		return result
	}

	if _, err := os.Stat(c.configPath); err == nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config file",
			Status: StatusPass,
			Detail: c.configPath,
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config file",
			Status: StatusWarn,
			Detail: fmt.Sprintf("%s not found, using defaults", c.configPath),
		})
	}

	if err := c.config.Validate(); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config valid",
			Status: StatusFail,
			Detail: err.Error(),
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config valid",
			Status: StatusPass,
		})
	}

	result.Items = append(result.Items, c.checkDataDir())

	return result
}

// checkDataDir reports whether the data directory exists or can be created.
func (c *ConfigCheck) checkDataDir() CheckItem {
	item := CheckItem{Label: "Data directory", Detail: c.config.DataDir}

	info, err := os.Stat(c.config.DataDir)
	switch {
	case err == nil && !info.IsDir():
		item.Status = StatusFail
		item.Detail = fmt.Sprintf("%s exists but is not a directory", c.config.DataDir)
	case err == nil:
		item.Status = StatusPass
	case os.IsNotExist(err):
		item.Status = StatusWarn
		item.Detail = fmt.Sprintf("%s will be created on first use", c.config.DataDir)
	default:
		item.Status = StatusFail
		item.Detail = fmt.Sprintf("cannot access %s: %v", c.config.DataDir, err)
	}

	return item
}

// PrintSubsystemCheck probes for the CUPS command line tools.
type PrintSubsystemCheck struct {
	config *config.Config
	exec   executil.Executor
}

// NewPrintSubsystemCheck creates a new print subsystem check.
func NewPrintSubsystemCheck(cfg *config.Config, exec executil.Executor) *PrintSubsystemCheck {
	return &PrintSubsystemCheck{config: cfg, exec: exec}
}

func (c *PrintSubsystemCheck) Name() string {
	return "Print subsystem"
}

func (c *PrintSubsystemCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	for _, bin := range []string{c.config.Printing.LpPath, c.config.Printing.LpstatPath} {
		if path, err := c.exec.LookPath(bin); err == nil {
			result.Items = append(result.Items, CheckItem{
				Label:  bin,
				Status: StatusPass,
				Detail: path,
			})
		} else {
			result.Items = append(result.Items, CheckItem{
				Label:  bin,
				Status: StatusWarn,
				Detail: "not found; labels will be rendered without printing",
			})
		}
	}

	return result
}
