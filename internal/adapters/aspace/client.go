// Package aspace implements the RecordClient port against the
// ArchivesSpace REST API.
package aspace

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/example/asreorder/internal/models"
	"github.com/example/asreorder/internal/ports/secondary"
)

const sessionHeader = "X-ArchivesSpace-Session"

// Client talks to one ArchivesSpace backend. Authenticate must be called
// before any lookup or move; the session token is then sent on every call.
type Client struct {
	http         *resty.Client
	username     string
	password     string
	repositoryID string
	token        string
}

// New creates a client for the given base URL and credentials.
func New(baseURL, username, password, repositoryID string) *Client {
	return &Client{
		http:         resty.New().SetBaseURL(strings.TrimRight(baseURL, "/")),
		username:     username,
		password:     password,
		repositoryID: repositoryID,
	}
}

type loginResponse struct {
	Session string `json:"session"`
}

// Authenticate logs in and stores the session token.
func (c *Client) Authenticate(ctx context.Context) error {
	var login loginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("password", c.password).
		SetResult(&login).
		Post(fmt.Sprintf("/users/%s/login", url.PathEscape(c.username)))
	if err != nil {
		return fmt.Errorf("authentication request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("authentication failed: %s", resp.Status())
	}
	if login.Session == "" {
		return fmt.Errorf("no session token received from ArchivesSpace")
	}
	c.token = login.Session
	return nil
}

type recordResponse struct {
	Title      string `json:"title"`
	Suppressed bool   `json:"suppressed"`
	Resource   struct {
		Ref string `json:"ref"`
	} `json:"resource"`
	Ancestors []struct {
		Ref string `json:"ref"`
	} `json:"ancestors"`
}

// Lookup fetches a record by type and id. Failures come back as
// *secondary.LookupError so the validator can classify them.
func (c *Client) Lookup(ctx context.Context, recordType string, id int) (*models.Record, error) {
	var body recordResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(sessionHeader, c.token).
		SetResult(&body).
		Get(fmt.Sprintf("/repositories/%s/%s/%d", c.repositoryID, recordType, id))
	if err != nil {
		return nil, lookupErr(secondary.KindTransport, recordType, id, err.Error())
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, lookupErr(secondary.KindNotFound, recordType, id, "record not found")
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return nil, lookupErr(secondary.KindAccessDenied, recordType, id, resp.Status())
	case resp.IsError():
		return nil, lookupErr(secondary.KindTransport, recordType, id, resp.Status())
	}

	rec := &models.Record{
		ID:          id,
		Title:       body.Title,
		Suppressed:  body.Suppressed,
		ResourceRef: body.Resource.Ref,
	}
	for _, a := range body.Ancestors {
		rec.AncestorRefs = append(rec.AncestorRefs, a.Ref)
	}
	return rec, nil
}

// SetPosition moves one child to an absolute position under the parent via
// accept_children.
func (c *Client) SetPosition(ctx context.Context, parentType string, parentID, childID, position int) error {
	return c.acceptChildren(ctx, parentType, parentID, []int{childID}, position)
}

// BulkInsert moves all children in one accept_children call. The children[]
// parameter is repeated once per id, in the given order; position applies
// to the first child and the rest follow it.
func (c *Client) BulkInsert(ctx context.Context, parentType string, parentID int, childIDs []int, position int) error {
	return c.acceptChildren(ctx, parentType, parentID, childIDs, position)
}

func (c *Client) acceptChildren(ctx context.Context, parentType string, parentID int, childIDs []int, position int) error {
	uris := make([]string, len(childIDs))
	for i, id := range childIDs {
		uris[i] = fmt.Sprintf("/repositories/%s/archival_objects/%d", c.repositoryID, id)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(sessionHeader, c.token).
		SetQueryParamsFromValues(url.Values{"children[]": uris}).
		SetQueryParam("position", strconv.Itoa(position)).
		Post(fmt.Sprintf("/repositories/%s/%s/%d/accept_children", c.repositoryID, parentType, parentID))
	if err != nil {
		return fmt.Errorf("accept_children request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("server rejected accept_children: %s: %s", resp.Status(), strings.TrimSpace(string(resp.Body())))
	}
	return nil
}

func lookupErr(kind secondary.LookupErrorKind, recordType string, id int, reason string) *secondary.LookupError {
	return &secondary.LookupError{Kind: kind, RecordType: recordType, ID: id, Reason: reason}
}

// Ensure Client implements the interface.
var _ secondary.RecordClient = (*Client)(nil)
