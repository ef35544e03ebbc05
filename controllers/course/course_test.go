package coursecontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// A pooled second connection would see a fresh empty in-memory db.
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Course{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func courseRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/Couressection", CreateCourse(db))
	r.GET("/Couressection/:id", GetCourseByID(db))
	return r
}

func TestValidateCourse(t *testing.T) {
	valid := CourseInput{
		Name:        "Spoken English",
		Description: "Beginner to advanced",
		Price:       json.RawMessage(`"4500"`),
		Category:    "English",
		Image:       "https://example.com/cover.png",
		MainHeadings: []models.CourseHeading{
			{Heading: "Basics", SubHeadings: []string{"Greetings", "Numbers"}},
		},
	}

	price, err := validateCourse(valid)
	if err != nil || price != 4500 {
		t.Fatalf("valid input: price=%v err=%v", price, err)
	}

	cases := []struct {
		name   string
		mutate func(*CourseInput)
	}{
		{"blank name", func(in *CourseInput) { in.Name = "  " }},
		{"unknown category", func(in *CourseInput) { in.Category = "French" }},
		{"bad image url", func(in *CourseInput) { in.Image = "https://example.com/cover.pdf" }},
		{"blank heading", func(in *CourseInput) { in.MainHeadings[0].Heading = "" }},
		{"duplicate subheading", func(in *CourseInput) {
			in.MainHeadings[0].SubHeadings = []string{"Greetings", "Greetings"}
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := valid
			in.MainHeadings = []models.CourseHeading{{
				Heading:     valid.MainHeadings[0].Heading,
				SubHeadings: append([]string(nil), valid.MainHeadings[0].SubHeadings...),
			}}
			c.mutate(&in)
			if _, err := validateCourse(in); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

type courseEnvelope struct {
	Status  int           `json:"status"`
	Message string        `json:"message"`
	Data    models.Course `json:"data"`
}

func TestCourseCreateFetchRoundTrip(t *testing.T) {
	r := courseRouter(testDB(t))

	headings := []models.CourseHeading{
		{Heading: "Basics", SubHeadings: []string{"Greetings", "Numbers"}},
		{Heading: "Grammar", SubHeadings: []string{"Tenses"}},
	}
	payload := map[string]any{
		"name":         "Spoken English",
		"description":  "Beginner to advanced",
		"price":        "4500",
		"duration":     "3 months",
		"image":        "https://example.com/cover.png",
		"category":     "English",
		"mainHeadings": headings,
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/Couressection", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d body %s", w.Code, w.Body.String())
	}

	var created courseEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Status != 201 || created.Data.ID == 0 {
		t.Fatalf("unexpected create envelope: %+v", created)
	}

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/Couressection/%d", created.Data.ID), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("fetch: got %d body %s", w.Code, w.Body.String())
	}

	var fetched courseEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode fetch response: %v", err)
	}
	if fetched.Status != 200 {
		t.Fatalf("unexpected fetch envelope: %+v", fetched)
	}
	if !reflect.DeepEqual([]models.CourseHeading(fetched.Data.MainHeadings), headings) {
		t.Fatalf("headings did not survive the round trip:\ngot  %+v\nwant %+v", fetched.Data.MainHeadings, headings)
	}
	if fetched.Data.Price != 4500 || fetched.Data.Category != models.CategoryEnglish {
		t.Fatalf("unexpected stored course: %+v", fetched.Data)
	}
}

func TestCourseCreateRejectsInvalidCategory(t *testing.T) {
	r := courseRouter(testDB(t))

	body := []byte(`{"name":"Spoken French","description":"x","price":1000,"category":"French"}`)
	req := httptest.NewRequest(http.MethodPost, "/Couressection", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got %d body %s", w.Code, w.Body.String())
	}
}
