//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"speakertag/cmd"
	"speakertag/infrastructure/config"

	"github.com/cucumber/godog"
)

type stopwordContext struct {
	tempDir    string
	configPath string
	config     *config.Config
	output     *bytes.Buffer
	err        error
}

var SharedStopwordContext = &stopwordContext{}

func InitializeStopwordScenario(ctx *godog.ScenarioContext) {
	testCtx := SharedStopwordContext

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		tempDir, err := os.MkdirTemp("", "stopword-test-*")
		if err != nil {
			return c, err
		}
		testCtx.tempDir = tempDir
		testCtx.configPath = filepath.Join(tempDir, "config.yaml")
		testCtx.output = &bytes.Buffer{}
		testCtx.err = nil
		testCtx.config = nil
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if testCtx.tempDir != "" {
			os.RemoveAll(testCtx.tempDir)
		}
		SharedStopwordContext = &stopwordContext{}
		return c, nil
	})

	ctx.Step(`^a config file exists with initial data$`, testCtx.aConfigFileExistsWithInitialData)
	ctx.Step(`^stopword "([^"]*)" exists$`, testCtx.stopwordExists)
	ctx.Step(`^I run config add stopword "([^"]*)"$`, testCtx.iRunConfigAddStopword)
	ctx.Step(`^I run config list stopwords$`, testCtx.iRunConfigListStopwords)
	ctx.Step(`^I run config remove stopword "([^"]*)"$`, testCtx.iRunConfigRemoveStopword)
	ctx.Step(`^the config should contain stopword "([^"]*)"$`, testCtx.theConfigShouldContainStopword)
	ctx.Step(`^the config should not contain stopword "([^"]*)"$`, testCtx.theConfigShouldNotContainStopword)
	ctx.Step(`^the command should succeed$`, testCtx.theCommandShouldSucceed)
	ctx.Step(`^the command should fail with "([^"]*)"$`, testCtx.theCommandShouldFailWith)
	ctx.Step(`^the output should contain "([^"]*)"$`, testCtx.theOutputShouldContain)
}

func (c *stopwordContext) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	return nil
}

func (c *stopwordContext) saveConfig() error {
	return config.Save(c.config, c.configPath)
}

// --- Background ---

func (c *stopwordContext) aConfigFileExistsWithInitialData() error {
	c.config = config.Default()
	c.config.Paths.SourceDirectory = filepath.Join(c.tempDir, "videos")
	return c.saveConfig()
}

// --- Steps ---

func (c *stopwordContext) stopwordExists(word string) error {
	if err := c.loadConfig(); err != nil {
		return err
	}
	c.config.Naming.ExtraStopwords = append(c.config.Naming.ExtraStopwords, strings.ToLower(word))
	return c.saveConfig()
}

func (c *stopwordContext) iRunConfigAddStopword(word string) error {
	if err := c.loadConfig(); err != nil {
		return err
	}
	c.output.Reset()
	c.err = cmd.RunConfigAddWithDependencies(c.config, c.configPath, "stopword", word, c.output)
	return nil
}

func (c *stopwordContext) iRunConfigListStopwords() error {
	if err := c.loadConfig(); err != nil {
		return err
	}
	c.output.Reset()
	c.err = cmd.RunConfigListWithDependencies(c.config, c.configPath, "stopwords", c.output)
	return nil
}

func (c *stopwordContext) iRunConfigRemoveStopword(word string) error {
	if err := c.loadConfig(); err != nil {
		return err
	}
	c.output.Reset()
	c.err = cmd.RunConfigRemoveWithDependencies(c.config, c.configPath, "stopword", word, c.output)
	return nil
}

func (c *stopwordContext) theConfigShouldContainStopword(word string) error {
	if err := c.loadConfig(); err != nil {
		return err
	}
	for _, w := range c.config.Naming.ExtraStopwords {
		if w == word {
			return nil
		}
	}
	return fmt.Errorf("stopword %q not found in config", word)
}

func (c *stopwordContext) theConfigShouldNotContainStopword(word string) error {
	if err := c.loadConfig(); err != nil {
		return err
	}
	for _, w := range c.config.Naming.ExtraStopwords {
		if w == word {
			return fmt.Errorf("stopword %q should not exist in config", word)
		}
	}
	return nil
}

// --- Common assertions ---

func (c *stopwordContext) theCommandShouldSucceed() error {
	if c.err != nil {
		return fmt.Errorf("expected command to succeed but got error: %v\nOutput: %s", c.err, c.output.String())
	}
	return nil
}

func (c *stopwordContext) theCommandShouldFailWith(expectedError string) error {
	if c.err == nil {
		return fmt.Errorf("expected command to fail with %q but it succeeded\nOutput: %s", expectedError, c.output.String())
	}
	if !strings.Contains(strings.ToLower(c.err.Error()), strings.ToLower(expectedError)) {
		return fmt.Errorf("expected error to contain %q but got %q", expectedError, c.err.Error())
	}
	return nil
}

func (c *stopwordContext) theOutputShouldContain(expected string) error {
	if !strings.Contains(c.output.String(), expected) {
		return fmt.Errorf("expected output to contain %q but got:\n%s", expected, c.output.String())
	}
	return nil
}
