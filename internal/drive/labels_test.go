package drive

import "testing"

func TestBuildFieldModification(t *testing.T) {
	t.Run("date", func(t *testing.T) {
		mod, err := buildFieldModification("f1", FieldTypeDate, "2026-12-31")
		if err != nil {
			t.Fatal(err)
		}
		if len(mod.SetDateValues) != 1 || mod.SetDateValues[0] != "2026-12-31" {
			t.Errorf("SetDateValues = %v", mod.SetDateValues)
		}
	})

	t.Run("integer", func(t *testing.T) {
		mod, err := buildFieldModification("f1", FieldTypeInteger, "17")
		if err != nil {
			t.Fatal(err)
		}
		if len(mod.SetIntegerValues) != 1 || mod.SetIntegerValues[0] != 17 {
			t.Errorf("SetIntegerValues = %v", mod.SetIntegerValues)
		}
	})

	t.Run("invalid integer", func(t *testing.T) {
		if _, err := buildFieldModification("f1", FieldTypeInteger, "seventeen"); err == nil {
			t.Error("expected error for non-numeric integer value")
		}
	})

	t.Run("user", func(t *testing.T) {
		mod, err := buildFieldModification("f1", FieldTypeUser, "jane@example.com")
		if err != nil {
			t.Fatal(err)
		}
		if len(mod.SetUserValues) != 1 || mod.SetUserValues[0] != "jane@example.com" {
			t.Errorf("SetUserValues = %v", mod.SetUserValues)
		}
	})

	t.Run("selection", func(t *testing.T) {
		mod, err := buildFieldModification("f1", FieldTypeSelection, "choiceA")
		if err != nil {
			t.Fatal(err)
		}
		if len(mod.SetSelectionValues) != 1 || mod.SetSelectionValues[0] != "choiceA" {
			t.Errorf("SetSelectionValues = %v", mod.SetSelectionValues)
		}
	})

	t.Run("text", func(t *testing.T) {
		mod, err := buildFieldModification("f1", FieldTypeText, "hello")
		if err != nil {
			t.Fatal(err)
		}
		if len(mod.SetTextValues) != 1 || mod.SetTextValues[0] != "hello" {
			t.Errorf("SetTextValues = %v", mod.SetTextValues)
		}
	})

	t.Run("unknown type falls back to text", func(t *testing.T) {
		mod, err := buildFieldModification("f1", FieldType("MYSTERY"), "v")
		if err != nil {
			t.Fatal(err)
		}
		if len(mod.SetTextValues) != 1 || mod.SetTextValues[0] != "v" {
			t.Errorf("SetTextValues = %v", mod.SetTextValues)
		}
	})
}
