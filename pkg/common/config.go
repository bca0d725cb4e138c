// Copyright © 2024 The Chatmate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chatmate

import (
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultModel = "gpt-3.5-turbo"

// Config is the session configuration stored in ConfigFile. The
// credential is handed to the transport explicitly; nothing in the
// program reads it from ambient state after loading.
type Config struct {
	APIKey string `yaml:"api-key"`
	Model  string `yaml:"model"`
}

// LoadConfig reads the configuration file, applying the OPENAI_API_KEY
// environment variable on top of it.
func LoadConfig() (Config, error) {
	file, err := os.ReadFile(ConfigFile)
	if err != nil {
		return Config{}, err
	}

	config, err := ParseConfig(file)
	if err != nil {
		return Config{}, err
	}

	// The environment variable takes precedence over the file.
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		config.APIKey = key
	}

	return config, nil
}

// ParseConfig unmarshals a configuration document, filling in the
// default model name if none is configured.
func ParseConfig(file []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(file, &config); err != nil {
		return Config{}, err
	}

	if config.Model == "" {
		config.Model = DefaultModel
	}

	return config, nil
}
