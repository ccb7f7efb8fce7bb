package destination_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"concierge/infras/otel/mocks"
	"concierge/internal/domains/destination/model"
	"concierge/internal/domains/destination/model/dto"
	serviceMocks "concierge/internal/domains/destination/service/mocks"
	"concierge/internal/handlers/destination"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
)

func newRouter(t *testing.T) (chi.Router, *serviceMocks.MockDestination) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := serviceMocks.NewMockDestination(ctrl)

	handler := destination.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, service
}

func imageBody(t *testing.T, contentType string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="pier.jpg"`)
	header.Set(constant.RequestHeaderContentType, contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatal(err)
	}

	_, _ = part.Write([]byte("jpeg bytes"))
	_ = writer.Close()

	return body, writer.FormDataContentType()
}

func TestHandler_GetDestinations_Filters(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDestinationsResponse, error) {
			assert.Equal(t, gDto.FilterGroupOperatorAnd, filter.Operator)
			assert.Len(t, filter.Filters, 2)

			return dto.GetDestinationsResponse{Destinations: []dto.DestinationResponse{{ID: "d-1"}}, TotalData: 1, TotalPage: 1}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/destinations/?"+model.FieldTitle+"=pier&"+model.FieldFeatured+"=true", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"d-1"`)
}

func TestHandler_SetFeatured(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(service *serviceMocks.MockDestination)
		wantCode  int
	}{
		{
			name: "unfeature",
			body: `{"featured":false}`,
			setupMock: func(service *serviceMocks.MockDestination) {
				service.EXPECT().SetFeatured(gomock.Any(), "d-1", false).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "flag is required",
			body:      `{}`,
			setupMock: func(_ *serviceMocks.MockDestination) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown destination",
			body: `{"featured":true}`,
			setupMock: func(service *serviceMocks.MockDestination) {
				service.EXPECT().SetFeatured(gomock.Any(), "d-1", true).Return(failure.NotFound("destination"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodPatch, "/destinations/d-1/featured", strings.NewReader(tt.body))
			req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_AddImage(t *testing.T) {
	t.Run("jpeg upload", func(t *testing.T) {
		router, service := newRouter(t)

		service.EXPECT().AddImage(gomock.Any(), "d-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req dto.AddImageRequest) (dto.AddImageResponse, error) {
				assert.Equal(t, "pier.jpg", req.Image.Filename)
				assert.NotNil(t, req.ImageFile)

				return dto.AddImageResponse{URL: "https://cdn/destination/x.jpg", Images: []string{"https://cdn/destination/x.jpg"}}, nil
			})

		body, contentType := imageBody(t, "image/jpeg")

		req := httptest.NewRequest(http.MethodPost, "/destinations/d-1/images", body)
		req.Header.Set(constant.RequestHeaderContentType, contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"url":"https://cdn/destination/x.jpg"`)
	})

	t.Run("non-image part is rejected", func(t *testing.T) {
		router, _ := newRouter(t)

		body, contentType := imageBody(t, "application/pdf")

		req := httptest.NewRequest(http.MethodPost, "/destinations/d-1/images", body)
		req.Header.Set(constant.RequestHeaderContentType, contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
