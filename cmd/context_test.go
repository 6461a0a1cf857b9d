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
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestMergeFlags(t *testing.T) {

	var depth uint64
	var names []string
	var level string

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Uint64Var(&depth, "depth", 2, "")
	flags.StringSliceVar(&names, "names", []string{"a"}, "")
	flags.StringVar(&level, "log", "error", "")
	require.NoError(t, flags.Parse([]string{"--log", "debug"}))

	v := viper.New()
	v.Set("depth", 5)
	v.Set("names", []interface{}{"b", "c"})
	v.Set("log", "trace")

	require.NoError(t, mergeFlags(v, flags))
	require.Equal(t, uint64(5), depth)
	require.Equal(t, []string{"b", "c"}, names)
	// explicit flags are kept
	require.Equal(t, "debug", level)
}

func TestMergeFlagsInvalidValue(t *testing.T) {

	var depth uint64
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Uint64Var(&depth, "depth", 2, "")

	v := viper.New()
	v.Set("depth", "deep")

	err := mergeFlags(v, flags)
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid value "deep" for depth`)
}
