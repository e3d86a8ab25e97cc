package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"rsmf-lab/domain/manifest"
)

func main() {
	// Dossier d'entrée prêt pour la commande generate
	outputDir := "./test_data"
	err := os.MkdirAll(outputDir, 0755)
	if err != nil {
		panic(fmt.Sprintf("Impossible de créer le dossier : %v", err))
	}

	fmt.Println("🚀 rsmf-lab : Génération du dossier de test...")

	// 1. Le manifest du transcript (2 participants, 3 events)
	manifestPath := filepath.Join(outputDir, manifest.Filename)
	genManifest(manifestPath)

	// 2. Une pièce jointe PDF
	pdfPath := filepath.Join(outputDir, "rapport_test.pdf")
	genPDF(pdfPath)

	// 3. Une capture PNG
	imgPath := filepath.Join(outputDir, "capture_test.png")
	genImage(imgPath)

	// 4. Une note texte
	notePath := filepath.Join(outputDir, "note.txt")
	genNote(notePath)

	fmt.Println("\n✅ Prêt ! Tu peux maintenant lancer : rsmf generate ./test_data ./conversation.rsmf")
}

// genManifest écrit un transcript minimal mais complet : horodatages,
// réactions, et un event par pièce jointe à relire
func genManifest(path string) {
	events := []manifest.Event{
		{
			Participant: "p1",
			Timestamp:   "2024-03-01T09:00:00Z",
			Body:        "Bonjour Bob, le rapport est en pièce jointe.",
			Reactions:   []manifest.Reaction{{Value: "👍"}},
		},
		{
			Participant: "p2",
			Timestamp:   "2024-03-01T09:05:00Z",
			Body:        "Merci Alice, je regarde la capture et je reviens vers toi.",
		},
		{
			Participant: "p1",
			Timestamp:   "2024-03-01T09:12:00Z",
			Body:        "Parfait, la note résume les chiffres clés.",
		},
	}

	m := manifest.Manifest{
		Version: "1.0",
		Participants: []manifest.Participant{
			{ID: "p1", Display: "Alice", Email: "alice@corp.com"},
			{ID: "p2", Display: "Bob", Email: "bob@corp.com"},
		},
		Events: &events,
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		fmt.Printf("❌ Erreur manifest : %v\n", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Printf("❌ Erreur manifest : %v\n", err)
	} else {
		fmt.Printf("📋 Manifest généré : %s\n", path)
	}
}

// genPDF crée une pièce jointe réaliste pour vérifier le round-trip du zip
func genPDF(path string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(40, 20, "rsmf-lab : Rapport mensuel")
	pdf.Ln(20)

	pdf.SetFont("Arial", "", 12)
	content := "Ce document accompagne le transcript de test.\n" +
		"Il doit ressortir du conteneur strictement identique, octet pour octet."
	pdf.MultiCell(0, 10, content, "", "", false)

	err := pdf.OutputFileAndClose(path)
	if err != nil {
		fmt.Printf("❌ Erreur PDF : %v\n", err)
	} else {
		fmt.Printf("📄 PDF généré : %s\n", path)
	}
}

// genImage crée un PNG de 800x600 pour avoir un binaire non trivial dans le zip
func genImage(path string) {
	width, height := 800, 600
	img := image.NewRGBA(image.Rectangle{image.Point{0, 0}, image.Point{width, height}})

	// Remplissage avec un dégradé bleu pour le style
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			c := color.RGBA{uint8(x % 255), 100, 200, 0xff}
			img.Set(x, y, c)
		}
	}

	f, _ := os.Create(path)
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Printf("❌ Erreur Image : %v\n", err)
	} else {
		fmt.Printf("📸 Image générée : %s\n", path)
	}
}

func genNote(path string) {
	content := "Chiffres clés du mois : CA +12%, churn -2%.\nVoir le PDF pour le détail."
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		fmt.Printf("❌ Erreur note : %v\n", err)
	} else {
		fmt.Printf("📝 Note générée : %s\n", path)
	}
}
