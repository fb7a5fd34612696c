//go:build integration

package steps

import (
	"context"
	"fmt"

	"speakertag/domain/naming"

	"github.com/cucumber/godog"
)

type namingContext struct {
	transcript     string
	extraStopwords []string
	name           string
	found          bool
}

// SharedNamingContext is reset before each scenario
var SharedNamingContext = &namingContext{}

func InitializeNamingScenario(ctx *godog.ScenarioContext) {
	testCtx := SharedNamingContext

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		*testCtx = namingContext{}
		return c, nil
	})

	ctx.Step(`^a transcript "([^"]*)"$`, testCtx.aTranscript)
	ctx.Step(`^an extra stopword "([^"]*)"$`, testCtx.anExtraStopword)
	ctx.Step(`^the speaker name is detected$`, testCtx.theSpeakerNameIsDetected)
	ctx.Step(`^the detected name should be "([^"]*)"$`, testCtx.theDetectedNameShouldBe)
	ctx.Step(`^no name should be detected$`, testCtx.noNameShouldBeDetected)
}

func (c *namingContext) aTranscript(transcript string) error {
	c.transcript = transcript
	return nil
}

func (c *namingContext) anExtraStopword(word string) error {
	c.extraStopwords = append(c.extraStopwords, word)
	return nil
}

func (c *namingContext) theSpeakerNameIsDetected() error {
	extractor := naming.NewExtractor(c.extraStopwords...)
	c.name, c.found = extractor.FindFirstName(c.transcript)
	return nil
}

func (c *namingContext) theDetectedNameShouldBe(expected string) error {
	if !c.found {
		return fmt.Errorf("expected name %q but none was detected", expected)
	}
	if c.name != expected {
		return fmt.Errorf("expected name %q but got %q", expected, c.name)
	}
	return nil
}

func (c *namingContext) noNameShouldBeDetected() error {
	if c.found {
		return fmt.Errorf("expected no name but got %q", c.name)
	}
	return nil
}
