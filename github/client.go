package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"sprint-burndown/burndown"
	"sprint-burndown/config"
)

const (
	defaultEndpoint = "https://api.github.com/graphql"
	pageSize        = 100
)

// Client handles GitHub Projects v2 GraphQL operations using direct HTTP calls
type Client struct {
	config     config.Config
	httpClient *http.Client
}

// NewClient creates a new GitHub client
func NewClient(config config.Config) Client {
	return Client{
		config:     config,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// itemSelection is shared by the organization and repository query
// shapes. Draft items carry no content and are skipped downstream.
const itemSelection = `
  projectV2(number: $number) {
    id
    title
    items(first: %d, after: $cursor) {
      pageInfo {
        hasNextPage
        endCursor
      }
      nodes {
        id
        content {
          ... on Issue {
            id
            title
            state
            createdAt
            closedAt
            labels(first: 50) { nodes { name } }
          }
          ... on PullRequest {
            id
            title
            state
            createdAt
            closedAt
            labels(first: 50) { nodes { name } }
          }
        }
        fieldValues(first: 50) {
          nodes {
            ... on ProjectV2ItemFieldSingleSelectValue {
              name
              field { ... on ProjectV2SingleSelectField { name } }
            }
            ... on ProjectV2ItemFieldTextValue {
              text
              field { ... on ProjectV2Field { name } }
            }
            ... on ProjectV2ItemFieldNumberValue {
              number
              field { ... on ProjectV2Field { name } }
            }
          }
        }
      }
    }
  }
`

// buildQuery wraps the item selection in the query shape matching the
// configured project type.
func (c Client) buildQuery() string {
	selection := fmt.Sprintf(itemSelection, pageSize)
	if c.config.ProjectType == "repository" {
		return fmt.Sprintf(`query($owner: String!, $repo: String!, $number: Int!, $cursor: String) {
  repository(owner: $owner, name: $repo) { %s }
}`, selection)
	}
	return fmt.Sprintf(`query($org: String!, $number: Int!, $cursor: String) {
  organization(login: $org) { %s }
}`, selection)
}

// FetchProject retrieves the project title and every project item,
// following item cursors until the last page.
func (c Client) FetchProject() (*Project, error) {
	query := c.buildQuery()

	project := &Project{}
	var cursor *string
	for page := 1; ; page++ {
		variables := map[string]any{
			"number": c.config.ProjectNumber,
			"cursor": cursor,
		}
		if c.config.ProjectType == "repository" {
			variables["owner"] = c.config.Owner
			variables["repo"] = c.config.Repo
		} else {
			variables["org"] = c.config.Owner
		}

		node, err := c.fetchPage(query, variables)
		if err != nil {
			return nil, err
		}

		project.ID = node.ID
		project.Title = node.Title
		for _, item := range node.Items.Nodes {
			if flat, ok := flattenItem(item); ok {
				project.Items = append(project.Items, flat)
			}
		}

		logrus.WithFields(logrus.Fields{
			"page":  page,
			"items": len(node.Items.Nodes),
		}).Debug("Fetched project items page")

		if !node.Items.PageInfo.HasNextPage {
			break
		}
		next := node.Items.PageInfo.EndCursor
		cursor = &next
	}

	return project, nil
}

// fetchPage posts one GraphQL request and unwraps the project node.
func (c Client) fetchPage(query string, variables map[string]any) (*projectNode, error) {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.GitHubToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "sprint-burndown")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("GraphQL request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var decoded graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("error parsing GraphQL response: %w", err)
	}
	if len(decoded.Errors) > 0 {
		return nil, fmt.Errorf("GraphQL error: %s", decoded.Errors[0].Message)
	}
	if decoded.Data == nil {
		return nil, fmt.Errorf("GraphQL response has no data")
	}

	owner := decoded.Data.Organization
	if c.config.ProjectType == "repository" {
		owner = decoded.Data.Repository
	}
	if owner == nil || owner.ProjectV2 == nil {
		return nil, fmt.Errorf("project %d not found for %s %q",
			c.config.ProjectNumber, c.config.ProjectType, c.config.Owner)
	}
	return owner.ProjectV2, nil
}

// getBaseURL-style override: a configured github_url points the client
// at a GitHub Enterprise GraphQL endpoint.
func (c Client) endpoint() string {
	if c.config.GitHubURL != "" {
		return c.config.GitHubURL
	}
	return defaultEndpoint
}

// flattenItem converts one API node into an aggregator record. Items
// without content (draft or inaccessible) are dropped.
func flattenItem(node itemNode) (burndown.Item, bool) {
	if node.Content.ID == "" && node.Content.Title == "" {
		return burndown.Item{}, false
	}

	item := burndown.Item{
		ID:       node.ID,
		Title:    node.Content.Title,
		State:    node.Content.State,
		ClosedAt: node.Content.ClosedAt,
	}
	if node.Content.CreatedAt != nil {
		item.CreatedAt = *node.Content.CreatedAt
	}
	for _, label := range node.Content.Labels.Nodes {
		item.Labels = append(item.Labels, label.Name)
	}
	for _, fv := range node.FieldValues.Nodes {
		if fv.Field.Name == "" {
			continue
		}
		text := fv.Text
		if text == "" {
			text = fv.Name
		}
		item.Fields = append(item.Fields, burndown.FieldValue{
			Field:  fv.Field.Name,
			Text:   text,
			Number: fv.Number,
		})
	}
	return item, true
}
