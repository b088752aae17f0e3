package loadprofiles

import "github.com/aristath/greenmix/internal/domain"

// Hourly templates in kW. Placeholder data standing in for metered curves.

// Two adults with children: morning and strong evening peaks
var familyProfile = []domain.LoadProfilePoint{
	{Hour: "0", Solar: 0.0, Wind: 0.5, Battery: 0.2, Consumption: 0.6},
	{Hour: "1", Solar: 0.0, Wind: 0.5, Battery: 0.2, Consumption: 0.5},
	{Hour: "2", Solar: 0.0, Wind: 0.5, Battery: 0.1, Consumption: 0.5},
	{Hour: "3", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.4},
	{Hour: "4", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.4},
	{Hour: "5", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.5},
	{Hour: "6", Solar: 0.1, Wind: 0.5, Battery: 0.0, Consumption: 0.8},
	{Hour: "7", Solar: 0.3, Wind: 0.4, Battery: 0.0, Consumption: 0.9},
	{Hour: "8", Solar: 0.6, Wind: 0.4, Battery: 0.0, Consumption: 0.9},
	{Hour: "9", Solar: 0.9, Wind: 0.4, Battery: 0.0, Consumption: 0.8},
	{Hour: "10", Solar: 1.2, Wind: 0.4, Battery: 0.0, Consumption: 0.8},
	{Hour: "11", Solar: 1.4, Wind: 0.4, Battery: 0.0, Consumption: 0.8},
	{Hour: "12", Solar: 1.5, Wind: 0.4, Battery: 0.0, Consumption: 0.8},
	{Hour: "13", Solar: 1.4, Wind: 0.4, Battery: 0.0, Consumption: 0.8},
	{Hour: "14", Solar: 1.2, Wind: 0.4, Battery: 0.0, Consumption: 0.8},
	{Hour: "15", Solar: 1.0, Wind: 0.5, Battery: 0.0, Consumption: 0.9},
	{Hour: "16", Solar: 0.7, Wind: 0.5, Battery: 0.1, Consumption: 1.0},
	{Hour: "17", Solar: 0.4, Wind: 0.6, Battery: 0.3, Consumption: 1.3},
	{Hour: "18", Solar: 0.2, Wind: 0.6, Battery: 0.4, Consumption: 1.5},
	{Hour: "19", Solar: 0.0, Wind: 0.6, Battery: 0.5, Consumption: 1.4},
	{Hour: "20", Solar: 0.0, Wind: 0.6, Battery: 0.4, Consumption: 1.2},
	{Hour: "21", Solar: 0.0, Wind: 0.6, Battery: 0.3, Consumption: 1.0},
	{Hour: "22", Solar: 0.0, Wind: 0.6, Battery: 0.2, Consumption: 0.9},
	{Hour: "23", Solar: 0.0, Wind: 0.5, Battery: 0.2, Consumption: 0.7},
}

// One adult with children: lower base load, evening peak
var singleParentProfile = []domain.LoadProfilePoint{
	{Hour: "0", Solar: 0.0, Wind: 0.4, Battery: 0.1, Consumption: 0.3},
	{Hour: "1", Solar: 0.0, Wind: 0.4, Battery: 0.1, Consumption: 0.3},
	{Hour: "2", Solar: 0.0, Wind: 0.4, Battery: 0.0, Consumption: 0.3},
	{Hour: "3", Solar: 0.0, Wind: 0.4, Battery: 0.0, Consumption: 0.3},
	{Hour: "4", Solar: 0.0, Wind: 0.4, Battery: 0.0, Consumption: 0.3},
	{Hour: "5", Solar: 0.0, Wind: 0.4, Battery: 0.0, Consumption: 0.4},
	{Hour: "6", Solar: 0.1, Wind: 0.4, Battery: 0.0, Consumption: 0.7},
	{Hour: "7", Solar: 0.3, Wind: 0.3, Battery: 0.0, Consumption: 0.9},
	{Hour: "8", Solar: 0.5, Wind: 0.3, Battery: 0.0, Consumption: 0.8},
	{Hour: "9", Solar: 0.8, Wind: 0.3, Battery: 0.0, Consumption: 0.7},
	{Hour: "10", Solar: 1.0, Wind: 0.3, Battery: 0.0, Consumption: 0.7},
	{Hour: "11", Solar: 1.2, Wind: 0.3, Battery: 0.0, Consumption: 0.6},
	{Hour: "12", Solar: 1.3, Wind: 0.3, Battery: 0.0, Consumption: 0.6},
	{Hour: "13", Solar: 1.2, Wind: 0.3, Battery: 0.0, Consumption: 0.6},
	{Hour: "14", Solar: 1.0, Wind: 0.3, Battery: 0.0, Consumption: 0.6},
	{Hour: "15", Solar: 0.8, Wind: 0.4, Battery: 0.1, Consumption: 0.7},
	{Hour: "16", Solar: 0.5, Wind: 0.4, Battery: 0.2, Consumption: 0.8},
	{Hour: "17", Solar: 0.3, Wind: 0.5, Battery: 0.3, Consumption: 1.0},
	{Hour: "18", Solar: 0.1, Wind: 0.5, Battery: 0.4, Consumption: 1.1},
	{Hour: "19", Solar: 0.0, Wind: 0.5, Battery: 0.4, Consumption: 1.0},
	{Hour: "20", Solar: 0.0, Wind: 0.5, Battery: 0.3, Consumption: 0.9},
	{Hour: "21", Solar: 0.0, Wind: 0.4, Battery: 0.2, Consumption: 0.8},
	{Hour: "22", Solar: 0.0, Wind: 0.4, Battery: 0.1, Consumption: 0.6},
	{Hour: "23", Solar: 0.0, Wind: 0.4, Battery: 0.1, Consumption: 0.4},
}

// Garage or small business: daytime load tracking opening hours
var businessProfile = []domain.LoadProfilePoint{
	{Hour: "0", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.2},
	{Hour: "1", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.2},
	{Hour: "2", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.2},
	{Hour: "3", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.2},
	{Hour: "4", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.2},
	{Hour: "5", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.2},
	{Hour: "6", Solar: 0.2, Wind: 0.5, Battery: 0.0, Consumption: 0.6},
	{Hour: "7", Solar: 0.5, Wind: 0.5, Battery: 0.0, Consumption: 1.0},
	{Hour: "8", Solar: 0.9, Wind: 0.5, Battery: 0.0, Consumption: 1.3},
	{Hour: "9", Solar: 1.3, Wind: 0.5, Battery: 0.0, Consumption: 1.6},
	{Hour: "10", Solar: 1.6, Wind: 0.5, Battery: 0.0, Consumption: 1.7},
	{Hour: "11", Solar: 1.8, Wind: 0.5, Battery: 0.0, Consumption: 1.8},
	{Hour: "12", Solar: 1.9, Wind: 0.5, Battery: 0.0, Consumption: 1.8},
	{Hour: "13", Solar: 1.8, Wind: 0.5, Battery: 0.0, Consumption: 1.8},
	{Hour: "14", Solar: 1.6, Wind: 0.5, Battery: 0.0, Consumption: 1.7},
	{Hour: "15", Solar: 1.2, Wind: 0.5, Battery: 0.0, Consumption: 1.6},
	{Hour: "16", Solar: 0.8, Wind: 0.5, Battery: 0.1, Consumption: 1.4},
	{Hour: "17", Solar: 0.4, Wind: 0.5, Battery: 0.2, Consumption: 1.2},
	{Hour: "18", Solar: 0.1, Wind: 0.5, Battery: 0.2, Consumption: 0.8},
	{Hour: "19", Solar: 0.0, Wind: 0.5, Battery: 0.1, Consumption: 0.4},
	{Hour: "20", Solar: 0.0, Wind: 0.5, Battery: 0.1, Consumption: 0.3},
	{Hour: "21", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.3},
	{Hour: "22", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.2},
	{Hour: "23", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.2},
}

// One adult: flat day, late evening peak
var singlePersonProfile = []domain.LoadProfilePoint{
	{Hour: "0", Solar: 0.0, Wind: 0.6, Battery: 0.3, Consumption: 0.7},
	{Hour: "1", Solar: 0.0, Wind: 0.6, Battery: 0.3, Consumption: 0.7},
	{Hour: "2", Solar: 0.0, Wind: 0.6, Battery: 0.2, Consumption: 0.6},
	{Hour: "3", Solar: 0.0, Wind: 0.6, Battery: 0.1, Consumption: 0.5},
	{Hour: "4", Solar: 0.0, Wind: 0.5, Battery: 0.1, Consumption: 0.4},
	{Hour: "5", Solar: 0.0, Wind: 0.5, Battery: 0.0, Consumption: 0.4},
	{Hour: "6", Solar: 0.1, Wind: 0.5, Battery: 0.0, Consumption: 0.5},
	{Hour: "7", Solar: 0.3, Wind: 0.4, Battery: 0.0, Consumption: 0.5},
	{Hour: "8", Solar: 0.6, Wind: 0.4, Battery: 0.0, Consumption: 0.6},
	{Hour: "9", Solar: 0.9, Wind: 0.4, Battery: 0.0, Consumption: 0.6},
	{Hour: "10", Solar: 1.2, Wind: 0.4, Battery: 0.0, Consumption: 0.6},
	{Hour: "11", Solar: 1.4, Wind: 0.4, Battery: 0.0, Consumption: 0.6},
	{Hour: "12", Solar: 1.5, Wind: 0.4, Battery: 0.0, Consumption: 0.6},
	{Hour: "13", Solar: 1.4, Wind: 0.4, Battery: 0.0, Consumption: 0.6},
	{Hour: "14", Solar: 1.2, Wind: 0.4, Battery: 0.0, Consumption: 0.6},
	{Hour: "15", Solar: 0.9, Wind: 0.5, Battery: 0.1, Consumption: 0.7},
	{Hour: "16", Solar: 0.6, Wind: 0.5, Battery: 0.2, Consumption: 0.8},
	{Hour: "17", Solar: 0.3, Wind: 0.6, Battery: 0.3, Consumption: 0.9},
	{Hour: "18", Solar: 0.2, Wind: 0.7, Battery: 0.4, Consumption: 1.0},
	{Hour: "19", Solar: 0.0, Wind: 0.7, Battery: 0.5, Consumption: 1.1},
	{Hour: "20", Solar: 0.0, Wind: 0.7, Battery: 0.5, Consumption: 1.1},
	{Hour: "21", Solar: 0.0, Wind: 0.6, Battery: 0.4, Consumption: 1.0},
	{Hour: "22", Solar: 0.0, Wind: 0.6, Battery: 0.3, Consumption: 0.8},
	{Hour: "23", Solar: 0.0, Wind: 0.6, Battery: 0.2, Consumption: 0.7},
}
