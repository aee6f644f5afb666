package types

type DecisionBasis string

const (
	DecisionBasisInternal   DecisionBasis = "internal"
	DecisionBasisApproved   DecisionBasis = "approved"
	DecisionBasisUnapproved DecisionBasis = "unapproved"
)
