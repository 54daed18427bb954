package main

import (
	"educat/config"
	"educat/database"
	"educat/models/curriculum"
	"encoding/csv"
	"log"
	"os"
	"strings"
)

// Imports the curriculum hierarchy from a CSV with subject,topic,lesson
// columns. The API treats the hierarchy as read-only, so this is the only
// writer. Rows are idempotent: existing names are reused, not duplicated.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	path := "curriculum.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"subject", "topic", "lesson"} {
		if _, ok := headerIndex[col]; !ok {
			log.Fatalf("CSV is missing the %q column", col)
		}
	}

	db := database.Database.Db
	imported := 0
	skipped := 0

	for i, row := range records[1:] {
		subjectName := strings.TrimSpace(row[headerIndex["subject"]])
		topicName := strings.TrimSpace(row[headerIndex["topic"]])
		lessonName := strings.TrimSpace(row[headerIndex["lesson"]])

		if subjectName == "" || topicName == "" || lessonName == "" {
			log.Printf("Skipping row %d: blank subject, topic or lesson", i+2)
			skipped++
			continue
		}

		var subject curriculum.Subject
		if err := db.Where("name = ?", subjectName).FirstOrCreate(&subject, curriculum.Subject{Name: subjectName}).Error; err != nil {
			log.Fatalf("Failed to import subject %q: %v", subjectName, err)
		}

		var topic curriculum.Topic
		if err := db.Where("name = ? AND subject_id = ?", topicName, subject.ID).
			FirstOrCreate(&topic, curriculum.Topic{Name: topicName, SubjectID: subject.ID}).Error; err != nil {
			log.Fatalf("Failed to import topic %q: %v", topicName, err)
		}

		var lesson curriculum.Lesson
		if err := db.Where("name = ? AND topic_id = ?", lessonName, topic.ID).
			FirstOrCreate(&lesson, curriculum.Lesson{Name: lessonName, TopicID: topic.ID}).Error; err != nil {
			log.Fatalf("Failed to import lesson %q: %v", lessonName, err)
		}

		imported++
	}

	log.Printf("Import finished. Imported: %d, Skipped: %d", imported, skipped)
}
