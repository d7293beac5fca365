package rubric

// DefaultCommercializationCriteria returns the 8-criterion weighted rubric
// used to score commercialization readiness. Weights sum to 1.0.
func DefaultCommercializationCriteria() []Criterion {
	return []Criterion{
		{Key: "Business Model", Description: "How well the company generates and sustains revenue", Weight: 0.10},
		{Key: "Competitive Advantage", Description: "Differentiation from competitors in a sustainable way", Weight: 0.10},
		{Key: "Customer Validation", Description: "Evidence of real customer demand or feedback", Weight: 0.10},
		{Key: "Go-to-Market Readiness", Description: "Preparedness for product/service launch", Weight: 0.10},
		{Key: "Market Opportunity", Description: "Size and growth potential of target market", Weight: 0.20},
		{Key: "Product Feasibility", Description: "Technical and operational feasibility of offering", Weight: 0.15},
		{Key: "Revenue Potential", Description: "Ability to generate significant, scalable income", Weight: 0.20},
		{Key: "Uniqueness", Description: "Originality and rarity of product/service in market", Weight: 0.05},
	}
}

// DefaultScreeningCriteria returns the boolean screening questionnaire.
// Each question contributes one point when answered yes.
func DefaultScreeningCriteria() []Criterion {
	questions := []string{
		"Does the company have a defined product or service concept?",
		"Does the company have at least one prototype created?",
		"Does the company have a clearly identified target market?",
		"Has the company tested the product/service with potential customers?",
		"Does the company have pre-orders, letters of intent, or confirmed customer interest?",
		"Does the company have a clear revenue model?",
		"Does the company have the freedom to operate without major legal barriers in its target market?",
		"Does the company know its key competitors?",
		"Does the company have a clear explanation of how it differs from its competitors?",
		"Does the company have access to necessary equipment, facilities, or technology?",
	}
	criteria := make([]Criterion, len(questions))
	for i, q := range questions {
		criteria[i] = Criterion{Key: q}
	}
	return criteria
}
