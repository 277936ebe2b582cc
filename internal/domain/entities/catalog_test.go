package entities

import "testing"

func TestSubcategoryBelongs(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		if !SubcategoryBelongs(CategoryVeiculo, "moto") {
			t.Fatalf("expected moto to belong to veiculo")
		}
	})

	t.Run("subcategory from another category", func(t *testing.T) {
		if SubcategoryBelongs(CategoryVeiculo, "reforma") {
			t.Fatalf("reforma belongs to imovel, not veiculo")
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		if SubcategoryBelongs("outra", "moto") {
			t.Fatalf("unknown category must not match")
		}
	})
}

func TestClosedSetValidation(t *testing.T) {
	if PurposeCategory("emprestimo").Valid() {
		t.Fatalf("unexpected valid category")
	}
	if PaymentTerm("13x").Valid() {
		t.Fatalf("unexpected valid term")
	}
	if PaymentMethod("cheque").Valid() {
		t.Fatalf("unexpected valid method")
	}
	if ProfessionalSituation("estagiario").Valid() {
		t.Fatalf("unexpected valid situation")
	}
	if !Term60x.Valid() || !MethodPix.Valid() || !SituationAposentado.Valid() {
		t.Fatalf("expected catalog values to validate")
	}
}

func TestBankDetailsValid(t *testing.T) {
	cases := []struct {
		name string
		bank BankDetails
		want bool
	}{
		{"plain account", BankDetails{BankCode: "341", Branch: "1234", Account: "56789"}, true},
		{"account with check digit", BankDetails{BankCode: "001", Branch: "1", Account: "12345678901-X"}, false},
		{"check digit within limit", BankDetails{BankCode: "001", Branch: "1", Account: "1234567890-X"}, true},
		{"lowercase check digit", BankDetails{BankCode: "237", Branch: "99999", Account: "1-x"}, true},
		{"numeric check digit", BankDetails{BankCode: "104", Branch: "405", Account: "33041-7"}, true},
		{"short bank code", BankDetails{BankCode: "41", Branch: "1234", Account: "567"}, false},
		{"alphabetic branch", BankDetails{BankCode: "341", Branch: "12a4", Account: "567"}, false},
		{"empty account", BankDetails{BankCode: "341", Branch: "1234", Account: ""}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.bank.Valid(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCancellable(t *testing.T) {
	cancellable := []RequestStatus{StatusRascunho, StatusAguardandoDocumentacao, StatusEmAnalise}
	terminal := []RequestStatus{StatusAprovado, StatusReprovado, StatusCancelado, StatusEfetivada}

	for _, s := range cancellable {
		if !s.Cancellable() {
			t.Fatalf("expected %s to be cancellable", s)
		}
	}
	for _, s := range terminal {
		if s.Cancellable() {
			t.Fatalf("expected %s to not be cancellable", s)
		}
	}
}
