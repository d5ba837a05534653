package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/IsabelaBoudoux/Sail1/internal/handler"
	"github.com/IsabelaBoudoux/Sail1/internal/model"
	"github.com/IsabelaBoudoux/Sail1/internal/router"
	"github.com/IsabelaBoudoux/Sail1/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestApp wires the real router, services and templates against an
// in-memory database, the same way cmd/server does.
func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Province{},
		&model.Member{},
		&model.BoatType{},
		&model.ClubTask{},
		&model.FeeStructure{},
		&model.MembershipType{},
		&model.Membership{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	provinces := []model.Province{
		{ProvinceCode: "ON", Name: "Ontario"},
		{ProvinceCode: "QC", Name: "Quebec"},
	}
	if err := db.Create(&provinces).Error; err != nil {
		t.Fatalf("seed provinces: %v", err)
	}
	types := []model.MembershipType{
		{MembershipTypeName: "Full", RatioToFull: 1.0},
		{MembershipTypeName: "Associate", RatioToFull: 0.5},
	}
	if err := db.Create(&types).Error; err != nil {
		t.Fatalf("seed membership types: %v", err)
	}

	feeCalc := service.NewFeeCalculator(db)
	memberService := service.NewMemberService(db)
	refService := service.NewReferenceService(db)

	r := gin.New()
	r.SetFuncMap(handler.TemplateFuncs())
	r.LoadHTMLGlob("../../web/templates/*.html")
	r.Use(sessions.Sessions("sailsession", cookie.NewStore([]byte("test-secret"))))

	router.Setup(r, router.Deps{
		HomeHandler:         handler.NewHomeHandler(),
		MemberHandler:       handler.NewMemberHandler(memberService, refService),
		BoatTypeHandler:     handler.NewBoatTypeHandler(service.NewBoatTypeService(db)),
		ClubTaskHandler:     handler.NewClubTaskHandler(service.NewClubTaskService(db)),
		FeeStructureHandler: handler.NewFeeStructureHandler(service.NewFeeStructureService(db)),
		MembershipHandler:   handler.NewMembershipHandler(service.NewMembershipService(db, feeCalc), memberService, refService),
	})
	return r, db
}

func doGet(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPost(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
