// api/models/portfolio.go
package models

import "time"

// Education is one entry in the personal education history.
type Education struct {
	Degree      string `json:"degree" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	Period      string `json:"period" binding:"required"`
	Grade       string `json:"grade,omitempty"`
}

type Skill struct {
	Name     string `json:"name" binding:"required"`
	Level    int    `json:"level"`
	Category string `json:"category" binding:"required"`
}

type Experience struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Type         string   `json:"type"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Period       string   `json:"period"`
	Status       string   `json:"status"`
	Highlights   []string `json:"highlights,omitempty"`
	Github       string   `json:"github,omitempty"`
	Demo         string   `json:"demo,omitempty"`
}

type Certification struct {
	Name        string `json:"name" binding:"required"`
	Issuer      string `json:"issuer"`
	Period      string `json:"period"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type Personal struct {
	Name        string      `json:"name" binding:"required"`
	Tagline     string      `json:"tagline"`
	Description string      `json:"description"`
	Email       string      `json:"email" binding:"required"`
	Phone       string      `json:"phone"`
	Location    string      `json:"location"`
	Bio         string      `json:"bio"`
	Education   []Education `json:"education"`
}

type Skills struct {
	Technical []Skill  `json:"technical"`
	Tools     []string `json:"tools"`
	Soft      []string `json:"soft"`
}

type Contact struct {
	Email        string            `json:"email" binding:"required"`
	Phone        string            `json:"phone"`
	Location     string            `json:"location"`
	Availability string            `json:"availability"`
	Social       map[string]string `json:"social"`
}

// Portfolio is the single live document served by the API. Updates replace it
// wholesale; nested objects carry no identity of their own.
type Portfolio struct {
	ID             string          `json:"id"`
	Personal       Personal        `json:"personal" binding:"required"`
	Skills         Skills          `json:"skills" binding:"required"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Contact        Contact         `json:"contact" binding:"required"`
	Activities     []string        `json:"activities"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ContactMessage is a persisted contact-form submission. Only the read flag
// ever changes after insert.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// ContactMessageCreate is the raw contact-form payload before validation.
type ContactMessageCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
