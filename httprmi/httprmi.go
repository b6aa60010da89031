// Package httprmi is the HTTP remote method invocation client built on the
// codec. A call serializes its arguments as a JSON array in the request
// body, posts to a URL derived from the service name and method, and binds
// the JSON response body to the declared return type. Server side failures
// travel back as a JSON remote exception document that maps to a registered
// error constructor.
package httprmi

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"

	jsonbind "jsonbind.dev"
	"jsonbind.dev/errorf"
	"jsonbind.dev/log"
	"jsonbind.dev/names"
)

const contentTypeJSON = "application/json"

// RemoteException is the error document a server returns with a 400 or 500
// status: the exception type that was raised and its message.
type RemoteException struct {
	Cause   string
	Message string
}

func (r RemoteException) String() string {
	return r.Cause + ": " + r.Message
}

// Client invokes the methods of one remote service. It is safe for
// concurrent use once configured.
type Client struct {
	hc         *http.Client
	base       string
	service    string
	returnType reflect.Type
	exceptions map[string]func(message string) error
}

// New creates a client for a service reachable under the implementation
// URL. The service name uses dot notation; a ".client" segment, the
// convention for the caller side facade, is stripped so the URL addresses
// the implementation.
func New(implementationURL, service string) *Client {
	return &Client{
		hc:         &http.Client{Timeout: 120 * time.Second},
		base:       strings.TrimSuffix(implementationURL, "/"),
		service:    strings.Replace(service, ".client", "", 1),
		exceptions: make(map[string]func(message string) error),
	}
}

// SetClient swaps the HTTP client, for timeouts, transports or test
// doubles.
func (c *Client) SetClient(hc *http.Client) { c.hc = hc }

// SetReturnType declares the type the response body binds to. Without it
// the call is void and the body is discarded.
func (c *Client) SetReturnType(t reflect.Type) { c.returnType = t }

// RegisterException maps the simple name of a server side exception to an
// error constructor, so remote failures surface as the caller's own error
// types.
func (c *Client) RegisterException(simpleName string, ctor func(message string) error) {
	c.exceptions[simpleName] = ctor
}

// Invoke calls a remote method. With arguments the request is a POST
// carrying them as a JSON array; without, a plain GET. The result is the
// bound return value, or nil for void calls.
func (c *Client) Invoke(ctx context.Context, method string, args ...any) (result any, err error) {
	u := fmt.Sprintf("%s/%s/%s.rmi", c.base, strings.ReplaceAll(c.service, ".", "/"), method)
	log.T.F("HTTP-RMI %s", u)

	var req *http.Request
	if len(args) > 0 {
		var body bytes.Buffer
		if err = jsonbind.Stringify(&body, args); err != nil {
			return nil, errors.Wrapf(err, "cannot serialize arguments for %s", u)
		}
		if req, err = http.NewRequestWithContext(ctx, http.MethodPost, u, &body); err != nil {
			return nil, errors.Wrapf(err, "cannot build request for %s", u)
		}
		req.Header.Set("Content-Type", contentTypeJSON)
	} else {
		if req, err = http.NewRequestWithContext(ctx, http.MethodGet, u, nil); err != nil {
			return nil, errors.Wrapf(err, "cannot build request for %s", u)
		}
	}
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("Cache-Control", "no-cache")

	var resp *http.Response
	if resp, err = c.hc.Do(req); err != nil {
		return nil, errors.Wrapf(err, "HTTP-RMI transaction failed on %s", u)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
	default:
		return nil, c.remoteError(u, resp)
	}
	if c.returnType == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, nil
	}
	if result, err = jsonbind.Parse(bufio.NewReader(resp.Body), c.returnType); err != nil {
		return nil, errors.Wrapf(err, "cannot bind return value of %s", u)
	}
	return
}

// remoteError maps a failure status to an error. Application level
// exceptions arrive as a remote exception document on 400 and 500; the
// other statuses describe the transport or the deployment.
func (c *Client) remoteError(u string, resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusInternalServerError:
		if strings.HasPrefix(resp.Header.Get("Content-Type"), contentTypeJSON) {
			rex, err := jsonbind.ParseAs[RemoteException](bufio.NewReader(resp.Body))
			if err != nil {
				return errors.Wrapf(err, "unreadable remote exception from %s", u)
			}
			if ctor, ok := c.exceptions[names.Last(rex.Cause, '.')]; ok {
				return ctor(rex.Message)
			}
			return errorf.E("execution error on %s: %s", u, rex)
		}
		return errorf.E("execution error on %s, status %d", u, resp.StatusCode)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errorf.E("access to %s denied, status %d", u, resp.StatusCode)
	case http.StatusNotFound:
		return errorf.E("method not found on %s", u)
	case http.StatusServiceUnavailable:
		return errorf.E("service %s is unavailable", u)
	}
	return errorf.E("HTTP-RMI error on %s, server returned %d", u, resp.StatusCode)
}
