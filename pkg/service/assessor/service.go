package assessor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
)

// client implements Service on top of a gollem LLM client
type client struct {
	llmClient gollem.LLMClient
}

// Option is a functional option for client configuration
type Option func(*client)

// New creates a new assessor service with the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient: llmClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Assess evaluates a vendor through the LLM provider and returns a
// validated assessment. Every failure mode (transport, empty response,
// malformed JSON, schema violation) surfaces as an error; nothing partially
// validated ever escapes.
func (c *client) Assess(ctx context.Context, input Input) (*model.Assessment, error) {
	if input.VendorName == "" {
		return nil, goerr.New("vendor name is required")
	}

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(buildResponseSchema()),
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildUserPrompt(input)))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate assessment",
			goerr.V("vendor", input.VendorName),
		)
	}

	if len(resp.Texts) == 0 {
		return nil, goerr.New("assessment provider returned empty response",
			goerr.V("vendor", input.VendorName),
		)
	}

	var wire wireResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &wire); err != nil {
		return nil, goerr.Wrap(err, "failed to parse assessment response",
			goerr.V("response", resp.Texts[0]),
		)
	}

	tier, err := types.ParseRiskTier(wire.RiskLevel)
	if err != nil {
		return nil, goerr.Wrap(err, "assessment response has unknown risk level",
			goerr.V("riskLevel", wire.RiskLevel),
		)
	}

	assessment := &model.Assessment{
		RiskTier:     tier,
		OverallScore: wire.OverallScore,
		Metrics: model.ScorecardMetrics{
			FinancialHealth:    wire.FinancialHealth,
			SafetyRecord:       wire.SafetyRecord,
			ProjectPerformance: wire.ProjectPerformance,
			Compliance:         wire.Compliance,
		},
		Summary: wire.Summary,
	}

	if err := assessment.Validate(); err != nil {
		return nil, goerr.Wrap(err, "assessment response failed schema validation",
			goerr.V("vendor", input.VendorName),
		)
	}

	return assessment, nil
}

const systemPrompt = "You are a senior QA Risk Officer for a construction management firm. You evaluate subcontractors from their description and operational history notes, assign numerical scores, and justify your assessment concisely."

// buildUserPrompt creates the evaluation prompt for a single vendor
func buildUserPrompt(input Input) string {
	var sb strings.Builder

	sb.WriteString("Evaluate the following subcontractor based on the provided description and operational history notes.\n\n")
	fmt.Fprintf(&sb, "Vendor Name: %s\n", input.VendorName)
	fmt.Fprintf(&sb, "Description/Notes: %s\n", input.Description)
	fmt.Fprintf(&sb, "Operational History: %s\n\n", input.HistoryNotes)
	sb.WriteString("Assign integer scores (0-100) for Financial Health, Safety Record, Project Performance, and Compliance.\n")
	sb.WriteString("Determine an overall weighted score (0-100) and a Risk Level (Low, Medium, High, Critical).\n")
	sb.WriteString("Provide a concise summary justifying the assessment.\n")

	return sb.String()
}

// buildResponseSchema creates the JSON schema for structured output
func buildResponseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "VendorRiskAssessment",
		Description: "Structured risk assessment of a subcontractor",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"riskLevel": {
				Type:        gollem.TypeString,
				Description: "Risk tier, exactly one of: Low, Medium, High, Critical",
			},
			"overallScore": {
				Type:        gollem.TypeInteger,
				Description: "Overall weighted score from 0 to 100",
			},
			"financialHealth": {
				Type:        gollem.TypeInteger,
				Description: "Financial health score from 0 to 100",
			},
			"safetyRecord": {
				Type:        gollem.TypeInteger,
				Description: "Safety record score from 0 to 100",
			},
			"projectPerformance": {
				Type:        gollem.TypeInteger,
				Description: "Project performance score from 0 to 100",
			},
			"compliance": {
				Type:        gollem.TypeInteger,
				Description: "Compliance score from 0 to 100",
			},
			"summary": {
				Type:        gollem.TypeString,
				Description: "Concise summary justifying the assessment",
			},
		},
		Required: []string{
			"riskLevel",
			"overallScore",
			"financialHealth",
			"safetyRecord",
			"projectPerformance",
			"compliance",
			"summary",
		},
	}
}
