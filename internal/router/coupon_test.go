package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/merabazaar/ecommerce-api/pkg/models"
)

type recordedBroadcast struct {
	subject string
	message string
}

// broadcastRecorder stands in for the detached user notification so tests
// can assert whether a handler triggered it.
func broadcastRecorder(calls *[]recordedBroadcast) userBroadcaster {
	return func(subject, message string) {
		*calls = append(*calls, recordedBroadcast{subject: subject, message: message})
	}
}

func postJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDeleteCouponMissIs404WithoutBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var calls []recordedBroadcast
	remove := func(_ context.Context, _ string) (*models.Coupon, error) {
		return nil, mongo.ErrNoDocuments
	}

	r := gin.New()
	r.DELETE("/delete-coupon", DeleteCoupon(remove, broadcastRecorder(&calls)))

	w := postJSON(r, http.MethodDelete, "/delete-coupon", `{"code":"GHOST10"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Coupon not found")
	assert.Empty(t, calls, "a miss must not notify users")
}

func TestDeleteCouponSuccessNotifiesUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var calls []recordedBroadcast
	var removedCode string
	remove := func(_ context.Context, code string) (*models.Coupon, error) {
		removedCode = code
		return &models.Coupon{Code: code}, nil
	}

	r := gin.New()
	r.DELETE("/delete-coupon", DeleteCoupon(remove, broadcastRecorder(&calls)))

	w := postJSON(r, http.MethodDelete, "/delete-coupon", `{"code":"summer25"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SUMMER25", removedCode)
	if assert.Len(t, calls, 1) {
		assert.Contains(t, calls[0].message, "SUMMER25")
	}
}

func TestCreateCouponDuplicateIs409WithoutBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var calls []recordedBroadcast
	create := func(_ context.Context, _ *models.Coupon) error {
		return mongo.CommandError{Code: 11000}
	}

	r := gin.New()
	r.POST("/create-coupon", CreateCoupon(create, broadcastRecorder(&calls)))

	w := postJSON(r, http.MethodPost, "/create-coupon",
		`{"code":"FESTIVE20","discountPercentage":20}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, calls)
}

func TestCreateCouponOutOfRangeIs400WithoutBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var calls []recordedBroadcast
	create := func(_ context.Context, _ *models.Coupon) error {
		t.Fatal("store must not be reached for an invalid percentage")
		return nil
	}

	r := gin.New()
	r.POST("/create-coupon", CreateCoupon(create, broadcastRecorder(&calls)))

	w := postJSON(r, http.MethodPost, "/create-coupon",
		`{"code":"TOODEEP","discountPercentage":140}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, calls)
}

func TestCreateCouponSuccessNotifiesUsers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var calls []recordedBroadcast
	create := func(_ context.Context, coupon *models.Coupon) error {
		assert.Equal(t, "DIWALI30", coupon.Code)
		return nil
	}

	r := gin.New()
	r.POST("/create-coupon", CreateCoupon(create, broadcastRecorder(&calls)))

	w := postJSON(r, http.MethodPost, "/create-coupon",
		`{"code":"diwali30","discountPercentage":30}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	if assert.Len(t, calls, 1) {
		assert.Contains(t, calls[0].message, "DIWALI30")
	}
}
