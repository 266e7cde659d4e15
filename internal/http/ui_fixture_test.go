package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	domainauth "github.com/internhub/marketplace-web/internal/domain/auth"
	"github.com/internhub/marketplace-web/internal/mocks"
	"github.com/internhub/marketplace-web/internal/service"
)

// recordingInvalidator remembers which sessions were dropped after a 401.
type recordingInvalidator struct {
	dropped []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, id string) error {
	r.dropped = append(r.dropped, id)
	return nil
}

// uiFixture wires real services over a mocked marketplace API and routes
// requests through the production UI route table.
type uiFixture struct {
	api      *mocks.MockMarketplaceAPI
	views    *service.ViewRegistry
	sessions *recordingInvalidator
	h        *UIHandlers
	mux      *http.ServeMux
}

func newUIFixture(t *testing.T) *uiFixture {
	t.Helper()
	tr := RequireTemplateRenderer(t)

	ctrl := gomock.NewController(t)
	api := mocks.NewMockMarketplaceAPI(ctrl)
	views := service.NewViewRegistry(service.DefaultViewRegistryConfig())
	inv := &recordingInvalidator{}

	h := &UIHandlers{
		T:               tr,
		Sessions:        inv,
		InternshipSvc:   service.NewInternshipService(service.InternshipServiceOptions{API: api, Views: views}),
		FavouriteSvc:    service.NewFavouriteService(service.FavouriteServiceOptions{API: api, Views: views}),
		ApplicationSvc:  service.NewApplicationService(service.ApplicationServiceOptions{API: api, Views: views}),
		ResumeSvc:       service.NewResumeService(service.ResumeServiceOptions{API: api}),
		NotificationSvc: service.NewNotificationService(service.NotificationServiceOptions{API: api}),
		OrganisationSvc: service.NewOrganisationService(service.OrganisationServiceOptions{API: api, Views: views}),
	}
	mux := http.NewServeMux()
	registerUIRoutes(mux, h, Guard{})

	return &uiFixture{api: api, views: views, sessions: inv, h: h, mux: mux}
}

// reqOpt customises a test request.
type reqOpt func(*http.Request) *http.Request

func asHTMX(target string) reqOpt {
	return func(r *http.Request) *http.Request {
		r.Header.Set("Hx-Request", "true")
		if target != "" {
			r.Header.Set("Hx-Target", target)
		}
		return r
	}
}

func asAPIClient() reqOpt {
	return func(r *http.Request) *http.Request {
		r.Header.Set("Accept", "application/json")
		return r.WithContext(context.WithValue(r.Context(), browserRequestKey{}, false))
	}
}

func withSession(sess domainauth.Session) reqOpt {
	return func(r *http.Request) *http.Request {
		return r.WithContext(SetSessionInContext(r.Context(), sess))
	}
}

func newPageRequest(method, target string, form url.Values, opts ...reqOpt) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Accept", "text/html")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req = req.WithContext(context.WithValue(req.Context(), browserRequestKey{}, true))
	for _, opt := range opts {
		req = opt(req)
	}
	return req
}

func (f *uiFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}
