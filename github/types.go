package github

import (
	"time"

	"sprint-burndown/burndown"
)

// types.go - Data structures for the GitHub Projects v2 GraphQL API

// Project is the flattened fetch result handed to the aggregator.
type Project struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Items []burndown.Item `json:"items"`
}

// GraphQL wire structures
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   *responseData  `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type responseData struct {
	Organization *projectOwner `json:"organization"`
	Repository   *projectOwner `json:"repository"`
}

type projectOwner struct {
	ProjectV2 *projectNode `json:"projectV2"`
}

type projectNode struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Items struct {
		PageInfo struct {
			HasNextPage bool   `json:"hasNextPage"`
			EndCursor   string `json:"endCursor"`
		} `json:"pageInfo"`
		Nodes []itemNode `json:"nodes"`
	} `json:"items"`
}

type itemNode struct {
	ID      string `json:"id"`
	Content struct {
		ID        string     `json:"id"`
		Title     string     `json:"title"`
		State     string     `json:"state"`
		CreatedAt *time.Time `json:"createdAt"`
		ClosedAt  *time.Time `json:"closedAt"`
		Labels    struct {
			Nodes []struct {
				Name string `json:"name"`
			} `json:"nodes"`
		} `json:"labels"`
	} `json:"content"`
	FieldValues struct {
		Nodes []fieldValueNode `json:"nodes"`
	} `json:"fieldValues"`
}

// fieldValueNode merges the three field-value fragments: single-select
// values carry Name, text values Text, number values Number.
type fieldValueNode struct {
	Name   string   `json:"name"`
	Text   string   `json:"text"`
	Number *float64 `json:"number"`
	Field  struct {
		Name string `json:"name"`
	} `json:"field"`
}
