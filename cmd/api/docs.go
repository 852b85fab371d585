package main

// @title           BizTrackr API
// @version         1.0
// @description     API for the BizTrackr business tracking application

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description JWT authentication header using the Bearer scheme. Example: "Bearer {token}"
