package entities

import "regexp"

// Closed sets for credit-request attributes. Invalid values are rejected at
// creation and never re-validated afterwards.

type PurposeCategory string

const (
	CategoryConsumo      PurposeCategory = "consumo"
	CategoryInvestimento PurposeCategory = "investimento"
	CategoryImovel       PurposeCategory = "imovel"
	CategoryVeiculo      PurposeCategory = "veiculo"
)

// subcategoriesByCategory is the fixed category → subcategory table.
var subcategoriesByCategory = map[PurposeCategory][]string{
	CategoryConsumo:      {"eletrodomesticos", "eletronicos", "moveis", "viagem", "educacao", "saude", "outros"},
	CategoryInvestimento: {"capital_de_giro", "expansao", "equipamentos", "reforma_comercial"},
	CategoryImovel:       {"aquisicao", "construcao", "reforma", "terreno"},
	CategoryVeiculo:      {"carro_novo", "carro_usado", "moto", "caminhao"},
}

func (c PurposeCategory) Valid() bool {
	_, ok := subcategoriesByCategory[c]
	return ok
}

// Subcategories returns the fixed subcategory list for the category.
func (c PurposeCategory) Subcategories() []string {
	return subcategoriesByCategory[c]
}

// SubcategoryBelongs reports whether sub is in the category's fixed list.
func SubcategoryBelongs(c PurposeCategory, sub string) bool {
	for _, s := range subcategoriesByCategory[c] {
		if s == sub {
			return true
		}
	}
	return false
}

type PaymentTerm string

const (
	Term12x PaymentTerm = "12x"
	Term24x PaymentTerm = "24x"
	Term36x PaymentTerm = "36x"
	Term48x PaymentTerm = "48x"
	Term60x PaymentTerm = "60x"
)

func (t PaymentTerm) Valid() bool {
	switch t {
	case Term12x, Term24x, Term36x, Term48x, Term60x:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodDebitoAutomatico PaymentMethod = "debito_automatico"
	MethodBoleto           PaymentMethod = "boleto"
	MethodPix              PaymentMethod = "pix"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodDebitoAutomatico, MethodBoleto, MethodPix:
		return true
	}
	return false
}

type ProfessionalSituation string

const (
	SituationCLT                 ProfessionalSituation = "clt"
	SituationServidorPublico     ProfessionalSituation = "servidor_publico"
	SituationAutonomo            ProfessionalSituation = "autonomo"
	SituationEmpresario          ProfessionalSituation = "empresario"
	SituationProfissionalLiberal ProfessionalSituation = "profissional_liberal"
	SituationAposentado          ProfessionalSituation = "aposentado"
	SituationPensionista         ProfessionalSituation = "pensionista"
	SituationDesempregado        ProfessionalSituation = "desempregado"
)

func (s ProfessionalSituation) Valid() bool {
	switch s {
	case SituationCLT, SituationServidorPublico, SituationAutonomo, SituationEmpresario,
		SituationProfissionalLiberal, SituationAposentado, SituationPensionista, SituationDesempregado:
		return true
	}
	return false
}

var (
	bankCodeRe = regexp.MustCompile(`^\d{3}$`)
	branchRe   = regexp.MustCompile(`^\d{1,5}$`)
	accountRe  = regexp.MustCompile(`^\d{1,11}(-[\dXx])?$`)
)

// Valid checks the routing triple shape: 3-digit bank code, branch up to 5
// digits, account up to 12 chars with an optional check-digit suffix.
func (b BankDetails) Valid() bool {
	if !bankCodeRe.MatchString(b.BankCode) || !branchRe.MatchString(b.Branch) {
		return false
	}
	return len(b.Account) <= 12 && accountRe.MatchString(b.Account)
}
