package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blood-donor-registry/internal/delivery/dto"
	"blood-donor-registry/internal/usecase"
	"blood-donor-registry/internal/usecase/mocks"
	"blood-donor-registry/pkg/response"
	"blood-donor-registry/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DonorHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	registration *mocks.MockDonorRegistrationUsecase
	directory    *mocks.MockDonorDirectoryUsecase
	profile      *mocks.MockDonorProfileUsecase
	handler      *DonorHandler
}

func TestDonorHandlerSuite(t *testing.T) {
	suite.Run(t, new(DonorHandlerSuite))
}

func (s *DonorHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.registration = mocks.NewMockDonorRegistrationUsecase(s.ctrl)
	s.directory = mocks.NewMockDonorDirectoryUsecase(s.ctrl)
	s.profile = mocks.NewMockDonorProfileUsecase(s.ctrl)
	s.handler = NewDonorHandler(s.registration, s.directory, s.profile, validator.NewValidator())
}

func (s *DonorHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

const ashaBody = `{"name":"Asha","mobile":"9876543210","age":29,"blood_group":"b+","availability":"HIGH","email":"asha@x.org"}`

func ashaResponse() *dto.DonorResponse {
	return &dto.DonorResponse{
		ID:           1,
		Name:         "Asha",
		Mobile:       "9876543210",
		Age:          29,
		BloodGroup:   "B+",
		Availability: "high",
		Email:        "asha@x.org",
	}
}

func (s *DonorHandlerSuite) decodeError(rec *httptest.ResponseRecorder) response.ErrorResponse {
	var body response.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func withID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func (s *DonorHandlerSuite) TestRegisterCreated() {
	s.registration.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req *dto.RegisterDonorRequest) (*dto.DonorResponse, error) {
			s.Equal("b+", req.BloodGroup)
			return ashaResponse(), nil
		})

	rec := httptest.NewRecorder()
	s.handler.Register(rec, httptest.NewRequest(http.MethodPost, "/donor/register", strings.NewReader(ashaBody)))

	s.Equal(http.StatusCreated, rec.Code)
	var body dto.DonorMessageResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("Donor registered successfully", body.Message)
	s.Equal("B+", body.Donor.BloodGroup)
	s.Equal("high", body.Donor.Availability)
}

func (s *DonorHandlerSuite) TestRegisterMobileConflict() {
	s.registration.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrMobileAlreadyExists)

	rec := httptest.NewRecorder()
	s.handler.Register(rec, httptest.NewRequest(http.MethodPost, "/donor/register", strings.NewReader(ashaBody)))

	s.Equal(http.StatusConflict, rec.Code)
	body := s.decodeError(rec)
	s.Equal(response.CategoryConflict, body.Error)
	s.Equal("mobile", body.Field)
}

func (s *DonorHandlerSuite) TestRegisterValidation() {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"mobile":"9876543210","age":29,"blood_group":"B+","availability":"high","email":"a@x.org"}`, "name"},
		{"blank name", `{"name":"   ","mobile":"9876543210","age":29,"blood_group":"B+","availability":"high","email":"a@x.org"}`, "name"},
		{"short mobile", `{"name":"A","mobile":"98765","age":29,"blood_group":"B+","availability":"high","email":"a@x.org"}`, "mobile"},
		{"letters in mobile", `{"name":"A","mobile":"98765abcde","age":29,"blood_group":"B+","availability":"high","email":"a@x.org"}`, "mobile"},
		{"zero age", `{"name":"A","mobile":"9876543210","age":0,"blood_group":"B+","availability":"high","email":"a@x.org"}`, "age"},
		{"age above limit", `{"name":"A","mobile":"9876543210","age":151,"blood_group":"B+","availability":"high","email":"a@x.org"}`, "age"},
		{"age beyond column range", `{"name":"A","mobile":"9876543210","age":3000000000,"blood_group":"B+","availability":"high","email":"a@x.org"}`, "age"},
		{"unknown blood group", `{"name":"A","mobile":"9876543210","age":29,"blood_group":"C+","availability":"high","email":"a@x.org"}`, "blood_group"},
		{"medium availability", `{"name":"A","mobile":"9876543210","age":29,"blood_group":"B+","availability":"medium","email":"a@x.org"}`, "availability"},
		{"bad email", `{"name":"A","mobile":"9876543210","age":29,"blood_group":"B+","availability":"high","email":"not-an-email"}`, "email"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := httptest.NewRecorder()
			s.handler.Register(rec, httptest.NewRequest(http.MethodPost, "/donor/register", strings.NewReader(tc.body)))

			s.Equal(http.StatusBadRequest, rec.Code)
			body := s.decodeError(rec)
			s.Equal(response.CategoryValidation, body.Error)
			s.Contains(body.Details, tc.field)
		})
	}
}

func (s *DonorHandlerSuite) TestRegisterInvalidDataTypes() {
	rec := httptest.NewRecorder()
	payload := `{"name":"Asha","mobile":"9876543210","age":"twenty","blood_group":"B+","availability":"high","email":"asha@x.org"}`
	s.handler.Register(rec, httptest.NewRequest(http.MethodPost, "/donor/register", strings.NewReader(payload)))

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decodeError(rec)
	s.Equal("Invalid data types", body.Message)
	s.Contains(body.Details, "age")
}

func (s *DonorHandlerSuite) TestRegisterMalformedBody() {
	rec := httptest.NewRecorder()
	s.handler.Register(rec, httptest.NewRequest(http.MethodPost, "/donor/register", strings.NewReader("{")))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Invalid request body", s.decodeError(rec).Message)
}

func (s *DonorHandlerSuite) TestListPassesQuery() {
	s.directory.EXPECT().
		List(gomock.Any(), &dto.DonorListQuery{BloodGroup: "AB-", Sort: "availability"}).
		Return([]dto.DonorResponse{}, nil)

	rec := httptest.NewRecorder()
	s.handler.List(rec, httptest.NewRequest(http.MethodGet, "/donors?blood_group=AB-&sort=availability", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *DonorHandlerSuite) TestListErrors() {
	s.Run("unknown sort", func() {
		rec := httptest.NewRecorder()
		s.handler.List(rec, httptest.NewRequest(http.MethodGet, "/donors?sort=age", nil))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown blood group", func() {
		s.directory.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidBloodGroup)
		rec := httptest.NewRecorder()
		s.handler.List(rec, httptest.NewRequest(http.MethodGet, "/donors?blood_group=C%2B", nil))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("store failure", func() {
		s.directory.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
		rec := httptest.NewRecorder()
		s.handler.List(rec, httptest.NewRequest(http.MethodGet, "/donors", nil))

		s.Equal(http.StatusInternalServerError, rec.Code)
		body := s.decodeError(rec)
		s.Equal(response.CategoryStore, body.Error)
		s.Equal("Database error", body.Message)
	})
}

func (s *DonorHandlerSuite) TestStats() {
	s.directory.EXPECT().Stats(gomock.Any()).Return(&dto.DonorStatsResponse{
		Total:        1,
		ByBloodGroup: map[string]int64{"B+": 1},
	}, nil)

	rec := httptest.NewRecorder()
	s.handler.Stats(rec, httptest.NewRequest(http.MethodGet, "/donors/stats", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"total":1,"by_blood_group":{"B+":1}}`, rec.Body.String())
}

func (s *DonorHandlerSuite) TestGetByEmail() {
	s.Run("missing email", func() {
		rec := httptest.NewRecorder()
		s.handler.GetByEmail(rec, httptest.NewRequest(http.MethodGet, "/donor", nil))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("Email is required", s.decodeError(rec).Message)
	})

	s.Run("not found", func() {
		s.profile.EXPECT().GetByEmail(gomock.Any(), "nobody@x.org").Return(nil, usecase.ErrDonorNotFound)
		rec := httptest.NewRecorder()
		s.handler.GetByEmail(rec, httptest.NewRequest(http.MethodGet, "/donor?email=nobody@x.org", nil))
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal(response.CategoryNotFound, s.decodeError(rec).Error)
	})

	s.Run("found", func() {
		s.profile.EXPECT().GetByEmail(gomock.Any(), "asha@x.org").Return(ashaResponse(), nil)
		rec := httptest.NewRecorder()
		s.handler.GetByEmail(rec, httptest.NewRequest(http.MethodGet, "/donor?email=asha@x.org", nil))
		s.Equal(http.StatusOK, rec.Code)

		var body dto.DonorResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("asha@x.org", body.Email)
	})
}

func (s *DonorHandlerSuite) TestUpdate() {
	s.Run("updated", func() {
		s.profile.EXPECT().UpdateByEmail(gomock.Any(), gomock.Any()).Return(ashaResponse(), nil)
		rec := httptest.NewRecorder()
		s.handler.Update(rec, httptest.NewRequest(http.MethodPut, "/donor/update", strings.NewReader(ashaBody)))

		s.Equal(http.StatusOK, rec.Code)
		var body dto.DonorMessageResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("Donor information updated successfully", body.Message)
	})

	s.Run("medium availability", func() {
		payload := strings.Replace(ashaBody, "HIGH", "medium", 1)
		rec := httptest.NewRecorder()
		s.handler.Update(rec, httptest.NewRequest(http.MethodPut, "/donor/update", strings.NewReader(payload)))
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("age beyond column range", func() {
		payload := strings.Replace(ashaBody, `"age":29`, `"age":3000000000`, 1)
		rec := httptest.NewRecorder()
		s.handler.Update(rec, httptest.NewRequest(http.MethodPut, "/donor/update", strings.NewReader(payload)))

		s.Equal(http.StatusBadRequest, rec.Code)
		body := s.decodeError(rec)
		s.Equal(response.CategoryValidation, body.Error)
		s.Equal("age must be less than or equal to 150", body.Details["age"])
	})

	s.Run("not found", func() {
		s.profile.EXPECT().UpdateByEmail(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrDonorNotFound)
		rec := httptest.NewRecorder()
		s.handler.Update(rec, httptest.NewRequest(http.MethodPut, "/donor/update", strings.NewReader(ashaBody)))
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("forbidden", func() {
		s.profile.EXPECT().UpdateByEmail(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrForbidden)
		rec := httptest.NewRecorder()
		s.handler.Update(rec, httptest.NewRequest(http.MethodPut, "/donor/update", strings.NewReader(ashaBody)))
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *DonorHandlerSuite) TestDeleteByEmail() {
	s.profile.EXPECT().DeleteByEmail(gomock.Any(), "asha@x.org").Return(nil)

	rec := httptest.NewRecorder()
	s.handler.DeleteByEmail(rec, httptest.NewRequest(http.MethodDelete, "/donor?email=asha@x.org", nil))

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Donor deleted successfully"}`, rec.Body.String())
}

func (s *DonorHandlerSuite) TestIDRoutesRejectBadIDs() {
	for _, id := range []string{"abc", "0", "-1"} {
		rec := httptest.NewRecorder()
		s.handler.GetByID(rec, withID(httptest.NewRequest(http.MethodGet, "/donor/"+id, nil), id))
		s.Equal(http.StatusBadRequest, rec.Code, id)
	}
}

func (s *DonorHandlerSuite) TestGetByID() {
	s.profile.EXPECT().GetByID(gomock.Any(), int64(1)).Return(ashaResponse(), nil)

	rec := httptest.NewRecorder()
	s.handler.GetByID(rec, withID(httptest.NewRequest(http.MethodGet, "/donor/1", nil), "1"))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *DonorHandlerSuite) TestUpdateAvailability() {
	s.profile.EXPECT().
		UpdateAvailability(gomock.Any(), int64(1), &dto.UpdateAvailabilityRequest{Availability: "low"}).
		Return(ashaResponse(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/donor/1/availability", strings.NewReader(`{"availability":"low"}`))
	s.handler.UpdateAvailability(rec, withID(req, "1"))

	s.Equal(http.StatusOK, rec.Code)
	var body dto.DonorMessageResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("Availability updated successfully", body.Message)
}

func (s *DonorHandlerSuite) TestDeleteByIDReturnsDonor() {
	s.profile.EXPECT().DeleteByID(gomock.Any(), int64(1)).Return(ashaResponse(), nil)

	rec := httptest.NewRecorder()
	s.handler.DeleteByID(rec, withID(httptest.NewRequest(http.MethodDelete, "/donor/1", nil), "1"))

	s.Equal(http.StatusOK, rec.Code)
	var body dto.DonorMessageResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("Donor deleted successfully", body.Message)
	s.Equal(int64(1), body.Donor.ID)
}
