package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/recolor/cluster"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
	"path/filepath"
)

var (
	cfgFile   string
	configErr error
	logger    hclog.Logger
	models    *cluster.Provider
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recolor",
	Short: "Shifts an image's colors toward another image's palette",
	Long: `recolor extracts named palettes (red, blue, ...) from a target and a
reference image and rescales the target so its palette approaches the
reference, either per RGB channel or on Lab lightness only.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}

		level := hclog.Info
		if viper.GetBool("verbose") {
			level = hclog.Debug
		}
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "recolor",
			Output: os.Stderr,
			Level:  level,
		})
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", "path", used)
		}

		models = cluster.NewProvider(modelSource(), logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if e := rootCmd.Execute(); e != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/recolor/config.yaml)")
	rootCmd.PersistentFlags().String("model", "", "precomputed cluster model file (default fits the built-in corpus)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("recolor")
	viper.AutomaticEnv()

	if cfgFile != "" {
		configErr = readConfig(viper.GetViper(), cfgFile, "")
		return
	}

	home, e := homedir.Dir()
	if e != nil {
		configErr = e
		return
	}
	configErr = readConfig(viper.GetViper(), "", filepath.Join(home, ".config", "recolor"))
}

// readConfig loads file, or config.* from dir when file is empty. Only a
// missing config in dir is tolerated.
func readConfig(v *viper.Viper, file string, dir string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	e := v.ReadInConfig()
	if _, ok := e.(viper.ConfigFileNotFoundError); ok {
		return nil
	}
	return e
}

func modelSource() cluster.Source {
	if path := viper.GetString("model"); path != "" {
		return cluster.FileSource{Path: path}
	}
	return cluster.FitSource{Corpus: cluster.DefaultCorpus()}
}
