package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sellerhub/backoffice-api/internal/api"
	"github.com/sellerhub/backoffice-api/internal/api/dto"
	"github.com/sellerhub/backoffice-api/internal/auth"
	"github.com/sellerhub/backoffice-api/internal/service"
	"github.com/sellerhub/backoffice-api/internal/utils"
	"github.com/sellerhub/backoffice-api/pkg/logger"
)

type mockProductService struct {
	mock.Mock
}

func (m *mockProductService) Create(ctx context.Context, actor service.Actor, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProductResponse), args.Error(1)
}

func (m *mockProductService) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProductResponse), args.Error(1)
}

func (m *mockProductService) Update(ctx context.Context, actor service.Actor, id int64, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProductResponse), args.Error(1)
}

func (m *mockProductService) Delete(ctx context.Context, actor service.Actor, id int64) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *mockProductService) List(ctx context.Context, actor service.Actor) ([]dto.ProductResponse, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).([]dto.ProductResponse), args.Error(1)
}

// authStub injects authenticated claims the way the JWT middleware does.
func authStub(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := &auth.Claims{
			Email: "bench@example.com",
			Role:  role,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject: "1",
			},
		}
		c.Set(string(utils.ClaimsKey), claims)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), utils.ClaimsKey, claims))
		c.Next()
	}
}

func newProductRouter(svc *mockProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := api.NewProductHandler(svc, api.NewBaseHandler(logger.NewNop()))

	router := gin.New()
	router.Use(authStub("gestor"))
	router.POST("/products", handler.CreateProduct)
	router.GET("/products", handler.ListProducts)
	return router
}

func BenchmarkCreateProduct(b *testing.B) {
	mockService := new(mockProductService)
	router := newProductRouter(mockService)

	mockService.On("Create", mock.Anything, mock.AnythingOfType("service.Actor"), mock.AnythingOfType("dto.CreateProductRequest")).
		Return(&dto.ProductResponse{ID: 1, Name: "Course"}, nil)

	payload := dto.CreateProductRequest{Name: "Course"}
	payloadBytes, _ := json.Marshal(payload)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("POST", "/products", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusCreated {
				b.Errorf("Expected status 201, got %d", w.Code)
			}
		}
	})
}

func BenchmarkListProducts(b *testing.B) {
	mockService := new(mockProductService)
	router := newProductRouter(mockService)

	mockProducts := make([]dto.ProductResponse, 100)
	for i := 0; i < 100; i++ {
		mockProducts[i] = dto.ProductResponse{
			ID:   int64(i + 1),
			Name: fmt.Sprintf("Course %d", i),
		}
	}

	mockService.On("List", mock.Anything, mock.AnythingOfType("service.Actor")).Return(mockProducts, nil)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("GET", "/products", nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

// TestHighConcurrencyCreateProducts exercises the create path under
// concurrent load.
func TestHighConcurrencyCreateProducts(t *testing.T) {
	mockService := new(mockProductService)
	router := newProductRouter(mockService)

	mockService.On("Create", mock.Anything, mock.AnythingOfType("service.Actor"), mock.AnythingOfType("dto.CreateProductRequest")).
		Return(&dto.ProductResponse{ID: 1, Name: "Course"}, nil).
		Run(func(args mock.Arguments) {
			time.Sleep(1 * time.Millisecond) // Simulate some processing time
		})

	numGoroutines := 100
	requestsPerGoroutine := 10
	totalRequests := numGoroutines * requestsPerGoroutine

	payload := dto.CreateProductRequest{Name: "Course"}
	payloadBytes, _ := json.Marshal(payload)

	var successCount int32
	var errorCount int32
	var totalLatency time.Duration
	var maxLatency time.Duration
	var minLatency time.Duration = time.Hour
	var mutex sync.Mutex

	startTime := time.Now()
	var wg sync.WaitGroup

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < requestsPerGoroutine; j++ {
				reqStart := time.Now()

				req, _ := http.NewRequest("POST", "/products", bytes.NewBuffer(payloadBytes))
				req.Header.Set("Content-Type", "application/json")

				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				reqLatency := time.Since(reqStart)

				mutex.Lock()
				totalLatency += reqLatency
				if reqLatency > maxLatency {
					maxLatency = reqLatency
				}
				if reqLatency < minLatency {
					minLatency = reqLatency
				}

				if w.Code == http.StatusCreated {
					successCount++
				} else {
					errorCount++
				}
				mutex.Unlock()
			}
		}()
	}

	wg.Wait()
	totalTime := time.Since(startTime)

	avgLatency := totalLatency / time.Duration(totalRequests)
	throughput := float64(totalRequests) / totalTime.Seconds()

	t.Logf("=== High Concurrency Test Results ===")
	t.Logf("Total requests: %d", totalRequests)
	t.Logf("Successful requests: %d", successCount)
	t.Logf("Failed requests: %d", errorCount)
	t.Logf("Total time: %v", totalTime)
	t.Logf("Throughput: %.2f requests/second", throughput)
	t.Logf("Average latency: %v", avgLatency)
	t.Logf("Min latency: %v", minLatency)
	t.Logf("Max latency: %v", maxLatency)

	assert.Equal(t, int32(totalRequests), successCount, "All requests should succeed")
	assert.Equal(t, int32(0), errorCount, "No requests should fail")
	assert.True(t, avgLatency < 100*time.Millisecond, "Average latency should be under 100ms, got %v", avgLatency)
}
