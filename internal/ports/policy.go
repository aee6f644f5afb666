package ports

import "depwarden/internal/types"

type PolicyPort interface {
	Decide(name string) types.Decision
}
