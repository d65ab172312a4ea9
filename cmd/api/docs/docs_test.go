package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDoc_QuestionsPostDocumentsBothBodies(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]struct {
			Responses map[string]struct {
				Description string `json:"description"`
				Schema      struct {
					Ref string `json:"$ref"`
				} `json:"schema"`
			} `json:"responses"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	ok := doc.Paths["/questions"]["post"].Responses["200"]
	assert.Equal(t, "#/definitions/dto.SearchQuestionsResponse", ok.Schema.Ref)
	assert.Contains(t, ok.Description, "dto.SuccessResponse")
}
