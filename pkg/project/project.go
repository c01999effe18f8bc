package project

// Name is the canonical name of this project
const Name = "dartls-mcp"

// Version is the current version of this project
const Version = "0.2.0"
