package models

import "time"

// User is the single profile created at onboarding. QuitDate anchors every
// derived time-based metric.
type User struct {
	ID                string    `json:"id"`
	QuitDate          time.Time `json:"quit_date"`
	CigarettesPerDay  int       `json:"cigarettes_per_day"`
	PricePerPack      float64   `json:"price_per_pack"`
	CigarettesPerPack int       `json:"cigarettes_per_pack"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UserPatch carries the fields of a partial profile update. Nil fields are
// left untouched.
type UserPatch struct {
	QuitDate          *time.Time
	CigarettesPerDay  *int
	PricePerPack      *float64
	CigarettesPerPack *int
}

func NewUser(quitDate time.Time, cigsPerDay int, pricePerPack float64, cigsPerPack int, now time.Time) User {
	return User{
		ID:                NewID(now),
		QuitDate:          quitDate.UTC(),
		CigarettesPerDay:  cigsPerDay,
		PricePerPack:      pricePerPack,
		CigarettesPerPack: cigsPerPack,
		CreatedAt:         now.UTC(),
		UpdatedAt:         now.UTC(),
	}
}

// UpdateUser merges a patch into an existing profile. ID and CreatedAt are
// immutable.
func UpdateUser(u User, patch UserPatch, now time.Time) User {
	if patch.QuitDate != nil {
		u.QuitDate = patch.QuitDate.UTC()
	}
	if patch.CigarettesPerDay != nil {
		u.CigarettesPerDay = *patch.CigarettesPerDay
	}
	if patch.PricePerPack != nil {
		u.PricePerPack = *patch.PricePerPack
	}
	if patch.CigarettesPerPack != nil {
		u.CigarettesPerPack = *patch.CigarettesPerPack
	}
	u.UpdatedAt = now.UTC()
	return u
}

func ValidateUser(u User) ValidationResult {
	var errs []string
	if u.QuitDate.IsZero() {
		errs = append(errs, "ধূমপান ছাড়ার তারিখ সঠিক নয়")
	}
	if u.CigarettesPerDay < 0 {
		errs = append(errs, "প্রতিদিনের সিগারেট সংখ্যা শূন্য বা তার বেশি হতে হবে")
	}
	if u.PricePerPack <= 0 {
		errs = append(errs, "প্যাকেটের দাম শূন্যের বেশি হতে হবে")
	}
	if u.CigarettesPerPack <= 0 {
		errs = append(errs, "প্যাকেটে সিগারেটের সংখ্যা শূন্যের বেশি হতে হবে")
	}
	if len(errs) > 0 {
		return invalidResult(errs)
	}
	return validResult()
}
