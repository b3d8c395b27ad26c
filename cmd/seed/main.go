package main

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/drivers/database"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/app/services/core/flowsteps"
	"debtflow-service/internal/app/services/core/messages"
	"flag"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// seedFile describes the notification flow reference data: the ordered
// steps of the collection flow and the default message templates per
// channel and step.
type seedFile struct {
	FlowSteps []seedFlowStep `yaml:"flow_steps"`
	Messages  []seedMessage  `yaml:"messages"`
}

type seedFlowStep struct {
	StepNumber   int      `yaml:"step_number"`
	Channels     []string `yaml:"channels"`
	CooldownDays int      `yaml:"cooldown_days"`
	Active       bool     `yaml:"active"`
	Description  string   `yaml:"description"`
}

type seedMessage struct {
	Type    string `yaml:"type"`
	Step    int    `yaml:"step"`
	Content string `yaml:"content"`
}

func main() {
	filePath := flag.String("file", "configs/seed.yaml", "path to the seed yaml file")
	flag.Parse()

	driverConfig := config.NewDriverConfig()

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Error reading seed file: %v", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("Error parsing seed file: %v", err)
	}

	mongoDB := database.NewMongoDB(driverConfig)
	dbName := driverConfig.MongoDB.DbName

	flowStepRepository := flowsteps.NewFlowStepMongoRepository(mongoDB, dbName)
	messageRepository := messages.NewMessageMongoRepository(mongoDB, dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, step := range seed.FlowSteps {
		err := flowStepRepository.Upsert(ctx, &models.FlowStepConfig{
			StepNumber:   step.StepNumber,
			Channels:     step.Channels,
			CooldownDays: step.CooldownDays,
			Active:       step.Active,
			Description:  step.Description,
		})
		if err != nil {
			log.Fatalf("Error upserting flow step %d: %v", step.StepNumber, err)
		}
	}
	log.Printf("Upserted %d flow steps", len(seed.FlowSteps))

	inserted := 0
	for _, message := range seed.Messages {
		existing, err := messageRepository.GetMessage(ctx, message.Type, message.Step, "")
		if err != nil {
			log.Fatalf("Error checking message template %s/%d: %v", message.Type, message.Step, err)
		}
		if existing != nil {
			continue
		}
		_, err = messageRepository.Insert(ctx, &models.Message{
			Type:      message.Type,
			Step:      message.Step,
			Content:   message.Content,
			IsDefault: true,
		})
		if err != nil {
			log.Fatalf("Error inserting message template %s/%d: %v", message.Type, message.Step, err)
		}
		inserted++
	}
	log.Printf("Inserted %d default message templates", inserted)
}
