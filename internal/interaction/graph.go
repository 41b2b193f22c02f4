package interaction

import (
	"context"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/rxlens/rxlens/internal/core/model"
)

// interactionQuery matches either direction of the INTERACTS_WITH edge;
// interactions are symmetric in the graph.
const interactionQuery = `
MATCH (a:Drug)-[r:INTERACTS_WITH]-(b:Drug)
WHERE toLower(a.name) = toLower($a) AND toLower(b.name) = toLower($b)
RETURN r.severity AS severity, r.summary AS summary, r.mechanism AS mechanism,
       r.action AS action, r.source AS source, r.snippet AS snippet
`

// GraphKnowledgeSource reads interaction edges from a Neo4j-compatible
// graph (Neo4j or Memgraph, same Bolt protocol).
type GraphKnowledgeSource struct {
	Driver neo4j.DriverWithContext
}

// NewGraphKnowledgeSource connects to the graph and verifies
// connectivity up front so a misconfigured URI fails at startup, not on
// the first request.
func NewGraphKnowledgeSource(uri, username, password string) (*GraphKnowledgeSource, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to interaction knowledge graph")
	return &GraphKnowledgeSource{Driver: driver}, nil
}

func (g *GraphKnowledgeSource) Close(ctx context.Context) error {
	return g.Driver.Close(ctx)
}

// Lookup returns every interaction edge recorded between the two drugs.
// Rows with missing severity come back as unknown rather than being
// dropped.
func (g *GraphKnowledgeSource) Lookup(ctx context.Context, drugA, drugB string) ([]model.Interaction, error) {
	params := map[string]any{"a": drugA, "b": drugB}

	result, err := neo4j.ExecuteQuery(ctx, g.Driver, interactionQuery, params, neo4j.EagerResultTransformer)
	if err != nil {
		return nil, fmt.Errorf("failed to execute interaction query: %w", err)
	}

	var findings []model.Interaction
	for _, record := range result.Records {
		finding := model.Interaction{
			Severity:  stringValue(record, "severity", model.SeverityUnknown),
			Summary:   stringValue(record, "summary", ""),
			Mechanism: stringValue(record, "mechanism", ""),
			Action:    stringValue(record, "action", "Consult healthcare provider"),
			Citations: []model.Citation{},
		}
		if source := stringValue(record, "source", ""); source != "" {
			finding.Citations = append(finding.Citations, model.Citation{
				Title:     source,
				SourceURI: source,
				Snippet:   stringValue(record, "snippet", ""),
			})
		}
		findings = append(findings, finding)
	}
	return findings, nil
}

func stringValue(record *neo4j.Record, key, fallback string) string {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return fallback
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return fallback
	}
	return s
}
