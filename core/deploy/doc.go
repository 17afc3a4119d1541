// Package deploy deploys the single application hosted by the standalone server.
//
// # Sources
//
// An application comes from one of four places, chosen by TOMCAT_STANDALONE_CONTEXT_DIRECTORY:
//
//   - unset: the application embedded in the running executable (SelfSource),
//     extracted into the staging directory
//   - s3://bucket/prefix: objects downloaded from object storage (StorageSource)
//   - a .war or .zip file: an archive extracted into the staging directory (ArchiveSource)
//   - anything else: a directory served in place (DirectorySource)
//
// # Descriptor
//
// The optional META-INF/context.yaml describes the deployment:
//
//	welcome: index.html
//	notFound: index.html
//	reloadable: true
//	parametersPath: context.json
//	parameters:
//	  apiUrl: ${API_URL}
//	resources:
//	  - name: jdbc/main
//	    driver: mysql
//	    dsn: ${DB_USER}:${DB_PASSWORD}@tcp(db:3306)/app
//
// Parameter values and resource DSNs are expanded with the context properties.
// A reloadable deployment re-reads its descriptor when the file changes.
package deploy
