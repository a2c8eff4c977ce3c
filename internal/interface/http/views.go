package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lawbridge/lawbridge-backend/internal/domain/entity"
)

func accountView(a *entity.Account) gin.H {
	return gin.H{
		"id":                   a.ID,
		"display_name":         a.DisplayName,
		"email":                a.Email,
		"email_verified":       a.EmailVerified,
		"avatar_url":           a.AvatarURL,
		"role":                 a.Role.String(),
		"banned":               a.Banned,
		"ban_reason":           a.BanReason,
		"ban_expires_at":       a.BanExpiresAt,
		"onboarding_completed": a.OnboardingCompleted,
		"created_at":           a.CreatedAt,
		"updated_at":           a.UpdatedAt,
	}
}

func clientProfileView(p *entity.ClientProfile) gin.H {
	return gin.H{
		"id":           p.ID,
		"account_id":   p.AccountID,
		"display_name": p.DisplayName,
		"phone_number": p.PhoneNumber,
		"location": gin.H{
			"country": p.Location.Country(),
			"state":   p.Location.State(),
		},
		"company":              p.Company,
		"specialization_ids":   p.SpecializationIDs,
		"onboarding_completed": p.OnboardingCompleted,
		"created_at":           p.CreatedAt,
		"updated_at":           p.UpdatedAt,
	}
}

func lawyerProfileView(p *entity.LawyerProfile) gin.H {
	v := gin.H{
		"id":                p.ID,
		"account_id":        p.AccountID,
		"first_name":        p.FirstName,
		"last_name":         p.LastName,
		"email":             p.Email,
		"phone_number":      p.PhoneNumber,
		"country":           p.Country,
		"current_firm":      p.CurrentFirm,
		"onboarding_step":   string(p.Step),
		"status":            string(p.Status),
		"profile_completed": p.ProfileCompleted,
		"documents":         documentViews(p.Documents),
		"specializations":   specializationViews(p.Specializations),
		"language_ids":      p.LanguageIDs,
		"created_at":        p.CreatedAt,
		"updated_at":        p.UpdatedAt,
	}
	if p.BarCredentials != nil {
		v["bar_credentials"] = gin.H{
			"bar_number": p.BarCredentials.BarNumber(),
			"issued_at":  p.BarCredentials.IssuedAt(),
		}
	}
	if p.Education != nil {
		v["education"] = gin.H{
			"school":          p.Education.School(),
			"graduation_year": p.Education.GraduationYear(),
		}
	}
	return v
}

func documentViews(docs []entity.LawyerDocument) []gin.H {
	out := make([]gin.H, 0, len(docs))
	for _, d := range docs {
		out = append(out, gin.H{
			"id":          d.ID,
			"name":        d.Name,
			"url":         d.URL,
			"uploaded_at": d.UploadedAt,
		})
	}
	return out
}

func specializationViews(specs []entity.LawyerSpecialization) []gin.H {
	out := make([]gin.H, 0, len(specs))
	for _, s := range specs {
		out = append(out, gin.H{
			"specialization_id":   s.SpecializationID,
			"primary":             s.Primary,
			"years_of_experience": s.YearsOfExperience,
		})
	}
	return out
}
