package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducanh6502/quan-an-online/internal/database"
	"github.com/ducanh6502/quan-an-online/internal/handlers"
	"github.com/ducanh6502/quan-an-online/internal/models"
)

// setupRouter dựng server hoàn chỉnh trên collection tạm, seed sẵn
// một tài khoản admin
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, database.Connect(dir))
	_, err := database.Admins.Append(models.Admin{ID: "a1", Username: "admin", Password: "admin123", Name: "Quản trị"})
	require.NoError(t, err)

	handlers.Init(filepath.Join(dir, "uploads"))

	r := gin.New()
	RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, name, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "matkhau123",
		"phone":    "0912345678",
		"address":  "12 Lý Thường Kiệt, Hà Nội",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func loginAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/admin/login", "", gin.H{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func orderBody() gin.H {
	return gin.H{
		"items":         []gin.H{{"id": "f1", "name": "Phở bò", "price": 45000, "quantity": 2}},
		"totalAmount":   90000,
		"address":       "12 Lý Thường Kiệt, Hà Nội",
		"phone":         "0912345678",
		"paymentMethod": "COD",
	}
}

func TestOrderEndpoints(t *testing.T) {
	r := setupRouter(t)
	userToken := registerUser(t, r, "Ngọc Anh", "ngocanh@example.com")
	strangerToken := registerUser(t, r, "Minh", "minh@example.com")
	adminToken := loginAdmin(t, r)

	// không có token → 401
	w := doJSON(t, r, http.MethodPost, "/api/orders", "", orderBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// thiếu thông tin → 400
	w = doJSON(t, r, http.MethodPost, "/api/orders", userToken, gin.H{"items": []gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// đặt hàng thành công
	w = doJSON(t, r, http.MethodPost, "/api/orders", userToken, orderBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, models.OrderStatusProcessing, order.Status)

	// người khác xem đơn → 403
	w = doJSON(t, r, http.MethodGet, "/api/orders/"+order.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// khách thường không được xem toàn bộ đơn
	w = doJSON(t, r, http.MethodGet, "/api/orders", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// khách thường không được đổi trạng thái
	w = doJSON(t, r, http.MethodPut, "/api/orders/"+order.ID, userToken, gin.H{"status": "Delivered"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin đổi trạng thái, chủ đơn thấy trạng thái mới
	w = doJSON(t, r, http.MethodPut, "/api/orders/"+order.ID, adminToken, gin.H{"status": "Delivered"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/orders/"+order.ID, userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, "Delivered", order.Status)

	// đơn không tồn tại → 404
	w = doJSON(t, r, http.MethodGet, "/api/orders/khong-co", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// danh sách đơn của tôi
	w = doJSON(t, r, http.MethodGet, "/api/orders/user/my-orders", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)
}

func TestReviewEndpoints(t *testing.T) {
	r := setupRouter(t)
	userToken := registerUser(t, r, "Ngọc Anh", "ngocanh@example.com")
	adminToken := loginAdmin(t, r)

	// admin thêm món
	w := doJSON(t, r, http.MethodPost, "/api/foods", adminToken, gin.H{
		"name":        "Phở bò",
		"description": "Phở bò truyền thống",
		"price":       45000,
		"category":    "Món nước",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var food models.Food
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &food))

	// khách đánh giá
	w = doJSON(t, r, http.MethodPost, "/api/reviews", userToken, gin.H{
		"foodId":  food.ID,
		"rating":  5,
		"comment": "Rất ngon",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var review models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
	assert.Equal(t, "Ngọc Anh", review.UserName)

	// rating món được cập nhật
	w = doJSON(t, r, http.MethodGet, "/api/foods/"+food.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &food))
	assert.Equal(t, 5.0, food.Rating)

	// đánh giá món không tồn tại → 404
	w = doJSON(t, r, http.MethodPost, "/api/reviews", userToken, gin.H{
		"foodId":  "khong-co",
		"rating":  5,
		"comment": "x",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// xem đánh giá theo món là public
	w = doJSON(t, r, http.MethodGet, "/api/reviews/food/"+food.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	assert.Len(t, reviews, 1)

	// admin trả lời đánh giá
	w = doJSON(t, r, http.MethodPut, "/api/reviews/"+review.ID, adminToken, gin.H{
		"adminReply": "Cảm ơn quý khách!",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// xóa đánh giá → rating món về 0
	w = doJSON(t, r, http.MethodDelete, "/api/reviews/"+review.ID, userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/foods/"+food.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &food))
	assert.Equal(t, 0.0, food.Rating)
}

func TestAuthEndpoints(t *testing.T) {
	r := setupRouter(t)

	// đăng ký thiếu thông tin → 400
	w := doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{"email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token := registerUser(t, r, "Ngọc Anh", "ngocanh@example.com")

	// email trùng → 400
	w = doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"name":     "Khác",
		"email":    "ngocanh@example.com",
		"password": "x12345",
		"phone":    "0911111111",
		"address":  "HN",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// sai mật khẩu → 400, sai email → 404
	w = doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{"email": "ngocanh@example.com", "password": "sai"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{"email": "khong@example.com", "password": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// profile cần token
	w = doJSON(t, r, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile models.PublicUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "ngocanh@example.com", profile.Email)

	// token rác → 401
	w = doJSON(t, r, http.MethodGet, "/api/users/profile", "rác", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// dashboard chỉ dành cho admin
	w = doJSON(t, r, http.MethodGet, "/api/admin/dashboard", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := loginAdmin(t, r)
	w = doJSON(t, r, http.MethodGet, "/api/admin/dashboard", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCategoryEndpoints(t *testing.T) {
	r := setupRouter(t)
	userToken := registerUser(t, r, "Ngọc Anh", "ngocanh@example.com")
	adminToken := loginAdmin(t, r)

	// khách thường không tạo được danh mục
	w := doJSON(t, r, http.MethodPost, "/api/categories", userToken, gin.H{"name": "Món nước"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/categories", adminToken, gin.H{"name": "Món nước"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cat models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))

	// danh sách là public
	w = doJSON(t, r, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cats []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	assert.Len(t, cats, 1)

	w = doJSON(t, r, http.MethodDelete, "/api/categories/"+cat.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
