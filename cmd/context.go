/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cmd

import (
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bbva/treewalk/log"
)

const (
	envPrefix         = "TREEWALK"
	defaultConfigName = ".treewalk.yaml"
)

type cmdContext struct {
	v                    *viper.Viper
	logLevel, configFile string
	logger               log.Logger
}

// load resolves the configuration of cmd and sets up logging. Values are
// taken, by priority, from explicit flags, TREEWALK_* environment
// variables, the config file and flag defaults.
func (c *cmdContext) load(cmd *cobra.Command) error {
	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	if f := cmd.Flags().Lookup("config"); f != nil && !f.Changed && c.v.IsSet("config") {
		c.configFile = c.v.GetString("config")
	}

	path, err := c.configPath()
	if err != nil {
		return err
	}
	if path != "" {
		c.v.SetConfigFile(path)
		if err := c.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "unable to read config file %s", path)
		}
	}

	if err := mergeFlags(c.v, cmd.Flags()); err != nil {
		return err
	}

	level := log.LevelFromString(c.logLevel)
	if level == log.NotSet {
		return errors.Errorf("unknown log level %q", c.logLevel)
	}
	c.logger = log.New(&log.LoggerOptions{
		Name:   "treewalk",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})
	log.SetDefault(c.logger)
	if path != "" {
		c.logger.Debugf("Using config file %s", path)
	}

	return nil
}

func (c *cmdContext) configPath() (string, error) {
	if c.configFile != "" {
		return c.configFile, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		// no home, no default config file
		return "", nil
	}
	path := filepath.Join(home, defaultConfigName)
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}

// mergeFlags sets every flag not given in the command line to the value
// v holds for its name, if any.
func mergeFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}

		// env values come as "a,b", config files may hold YAML lists
		var value string
		switch v.Get(f.Name).(type) {
		case []interface{}, []string:
			value = strings.Join(v.GetStringSlice(f.Name), ",")
		default:
			value = v.GetString(f.Name)
		}

		if setErr := flags.Set(f.Name, value); setErr != nil {
			err = errors.Wrapf(setErr, "invalid value %q for %s", value, f.Name)
		}
	})
	return err
}
