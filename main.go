package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/apodiktos/go-ergani-client/ergani"
	"github.com/apodiktos/go-ergani-client/ergani/model"
	"github.com/apodiktos/go-ergani-client/ergani/util"
)

func main() {

	logrus.SetLevel(logrus.DebugLevel)

	_ = godotenv.Load()

	username := util.GetEnvOrFailed("ERGANI_USERNAME")
	password := util.GetEnvOrFailed("ERGANI_PASSWORD")

	httpClient := &http.Client{
		Timeout: 15 * time.Second,
	}

	client := ergani.New(username, password,
		ergani.WithEnvironment(ergani.Trial),
		ergani.WithHTTPClient(httpClient),
	)

	now := time.Now()

	batch := model.CompanyWorkCard{
		EmployerTaxIdentificationNumber: "999999999",
		BusinessBranchNumber:            0,
		CardDetails: []model.WorkCard{
			{
				EmployeeTaxIdentificationNumber: "123456789",
				EmployeeLastName:                "Papadopoulos",
				EmployeeFirstName:               "Giorgos",
				MovementType:                    model.Arrival,
				SubmissionDate:                  now,
				MovementDatetime:                now,
			},
		},
	}

	results, err := client.SubmitWorkCard(context.Background(), []model.CompanyWorkCard{batch})
	if err != nil {
		panic(err)
	}

	for _, r := range results {
		fmt.Println(r.SubmissionID, r.Protocol, r.SubmissionDate)
	}
}
