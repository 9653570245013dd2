package models

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PendingStudent is a roster entry created by the coordinator. Only students
// present on the roster can create an account, and each entry can be claimed
// exactly once.
type PendingStudent struct {
	ID         int64
	Code       string
	FirstName  string
	LastName   string
	Email      string
	DocumentID string
	Program    string
	Semester   int
	Status     RegistrationStatus
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName returns the entry's display name
func (p *PendingStudent) FullName() string {
	return p.FirstName + " " + p.LastName
}

// CodePrefix is the fixed prefix of every student code
const CodePrefix = "DER"

// GenerateStudentCode builds a candidate registration code: the fixed prefix,
// four random decimal digits, and the first four characters of a random UUID
// uppercased. Uniqueness must still be checked against the roster; callers
// regenerate on collision.
func GenerateStudentCode() string {
	var digits strings.Builder
	for i := 0; i < 4; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand failing is unrecoverable for code issuance
			panic(err)
		}
		digits.WriteByte(byte('0' + n.Int64()))
	}

	uid := strings.ReplaceAll(uuid.New().String(), "-", "")
	return CodePrefix + digits.String() + strings.ToUpper(uid[:4])
}
