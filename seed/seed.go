// api/seed/seed.go
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"portfolio/api/models"
	"portfolio/api/store"
)

// EnsurePortfolio populates the demo portfolio document once. It is a no-op
// when a portfolio already exists, so running it on every boot is safe.
func EnsurePortfolio(ctx context.Context, s *store.PortfolioStore) error {
	_, err := s.GetPortfolio(ctx)
	if err == nil {
		log.Println("Portfolio data already exists. Skipping seed.")
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to check existing portfolio: %w", err)
	}

	portfolio := demoPortfolio()
	if err := s.ReplacePortfolio(ctx, portfolio); err != nil {
		return fmt.Errorf("failed to seed portfolio data: %w", err)
	}

	log.Println("Portfolio data seeded successfully!")
	return nil
}

func demoPortfolio() *models.Portfolio {
	now := time.Now().UTC()
	return &models.Portfolio{
		ID: uuid.New().String(),
		Personal: models.Personal{
			Name:        "Albee John",
			Tagline:     "Data Scientist & Analytics Professional",
			Description: "Passionate about transforming raw data into actionable insights through advanced analytics, machine learning, and data-driven decision making.",
			Email:       "albeejohnwwe@gmail.com",
			Phone:       "+91 8943785705",
			Location:    "Kollam, Kerala",
			Bio: "I am an aspiring data scientist, fascinated with the expanse of data analytics and machine learning technologies. " +
				"Currently pursuing expertise in Data Science and advanced analytics while building strong foundations in statistical analysis and predictive modeling. " +
				"My journey spans from academic excellence to practical implementation, with experience in consulting and complex data analysis.",
			Education: []models.Education{
				{
					Degree:      "B.Tech, Computer Science & Engineering",
					Institution: "St. Thomas College Of Engineering & Technology",
					Period:      "2020-2024",
					Grade:       "Completed",
				},
				{
					Degree:      "Senior Secondary (XII)",
					Institution: "St. Gregorius Higher Secondary School, Kottarakkara",
					Period:      "2019",
					Grade:       "69.00%",
				},
				{
					Degree:      "Secondary (X)",
					Institution: "St. Mary's Bethany Central School, Valakom",
					Period:      "2016",
					Grade:       "CGPA: 9.60/10",
				},
			},
		},
		Skills: models.Skills{
			Technical: []models.Skill{
				{Name: "Python", Level: 90, Category: "Programming"},
				{Name: "R Programming", Level: 75, Category: "Programming"},
				{Name: "SQL", Level: 85, Category: "Programming"},
				{Name: "Data Science", Level: 85, Category: "Analytics"},
				{Name: "Statistical Analysis", Level: 80, Category: "Analytics"},
				{Name: "Machine Learning", Level: 80, Category: "AI/ML"},
				{Name: "Deep Learning", Level: 75, Category: "AI/ML"},
				{Name: "Data Visualization", Level: 85, Category: "Analytics"},
			},
			Tools: []string{"NumPy", "Matplotlib", "Seaborn", "Pandas", "Scikit-learn", "TensorFlow", "Jupyter", "Tableau", "Power BI"},
			Soft:  []string{"Effective Communication", "Teamwork", "Time Management", "Data Management", "Problem Solving", "Critical Thinking", "Statistical Reasoning"},
		},
		Experience: []models.Experience{
			{
				ID:       uuid.New().String(),
				Title:    "Consultant",
				Company:  "RM Plc",
				Location: "Thiruvananthapuram",
				Period:   "May 2025 - Jul 2025",
				Type:     "Contract",
				Achievements: []string{
					"Contributed high target within stipulated time limit",
					"Handled complex data analysis and management",
					"Improved time management processes",
					"Developed accurate data management systems",
					"Enhanced team collaboration and communication",
				},
				Technologies: []string{"Data Analysis", "Project Management", "Team Collaboration"},
			},
		},
		Projects: []models.Project{
			{
				ID:           uuid.New().String(),
				Name:         "Private Line: IMDB YouTube Clone",
				Description:  "A comprehensive full-stack web application that combines the functionality of IMDB and YouTube, built using the MERN stack. Features include user authentication, video streaming, movie ratings, reviews, and a responsive design.",
				Technologies: []string{"MongoDB", "Express.js", "React", "Node.js", "JWT Authentication", "Video Streaming"},
				Period:       "May 2023 - May 2024",
				Status:       "Completed",
				Highlights: []string{
					"Developed a scalable full-stack application using MERN stack",
					"Implemented user authentication and authorization",
					"Created responsive UI with modern design principles",
					"Integrated video streaming and movie database functionality",
					"Collaborated effectively within a development team",
				},
				Github: "#",
				Demo:   "#",
			},
		},
		Certifications: []models.Certification{
			{
				Name:        "Data Science With Python And Machine Learning",
				Issuer:      "Soften Technologies",
				Period:      "Aug 2024 - Mar 2025",
				Type:        "Virtual",
				Description: "Comprehensive coursework in Data Science using Python, integrating Machine Learning algorithms and AI applications, utilizing libraries such as NumPy, Matplotlib, Seaborn and more.",
			},
		},
		Contact: models.Contact{
			Email:        "albeejohnwwe@gmail.com",
			Phone:        "+91 8943785705",
			Location:     "Kollam, Kerala",
			Availability: "Open to opportunities",
			Social: map[string]string{
				"linkedin": "#",
				"github":   "#",
				"twitter":  "#",
			},
		},
		Activities: []string{
			"IEEE Society Member - Active college member focusing on engineering innovation and networking",
			"Continuous learner in emerging technologies and industry trends",
			"Regular participant in tech meetups and coding communities",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
